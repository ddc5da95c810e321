package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Browser  BrowserConfig
	Ingest   IngestConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
	NatsURL     string
	RedisURL    string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
	BrowserToken string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "gemini" or "ollama"
	LLMModel          string // e.g. "gemini-2.0-flash-lite", "llama3"
	VectorBackend     string // "pgvector" or "memory"
}

type BrowserConfig struct {
	BaseURL           string
	NavTimeoutSeconds int
	RenderWaitSeconds int
	MaxContentChars   int
}

type IngestConfig struct {
	EventTopic string // in-process topic for ingestion lifecycle events
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "logs/ingest.log"),
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			BrowserToken: getEnv("BROWSER_SERVICE_TOKEN", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-2.0-flash-lite"),
			VectorBackend:     getEnv("VECTOR_BACKEND", "pgvector"),
		},
		Browser: BrowserConfig{
			BaseURL:           getEnv("BROWSER_SERVICE_URL", "http://localhost:9222"),
			NavTimeoutSeconds: getEnvAsInt("BROWSER_NAV_TIMEOUT_SECONDS", 40),
			RenderWaitSeconds: getEnvAsInt("BROWSER_RENDER_WAIT_SECONDS", 3),
			MaxContentChars:   getEnvAsInt("BROWSER_MAX_CONTENT_CHARS", 15000),
		},
		Ingest: IngestConfig{
			EventTopic: getEnv("INGEST_EVENT_TOPIC", "INGEST_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
