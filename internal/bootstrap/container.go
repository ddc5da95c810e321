package bootstrap

import (
	"context"
	"log"
	"time"

	"astro-context-be/internal/config"
	"astro-context-be/internal/pkg/logger"
	"astro-context-be/internal/repository/contract"
	"astro-context-be/internal/repository/implementation"
	"astro-context-be/internal/repository/memory"
	"astro-context-be/internal/service"
	"astro-context-be/pkg/astro"
	"astro-context-be/pkg/browser"
	"astro-context-be/pkg/database"
	"astro-context-be/pkg/embedding"
	"astro-context-be/pkg/llm/factory"

	pktNats "astro-context-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	IngestionService service.IIngestionService
	RetrievalService service.IRetrievalService
	IndexService     service.IIndexService
	EphemerisService service.IEphemerisService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	SysLogger logger.ILogger

	natsPub *pktNats.Publisher
}

// NewContainer wires the whole pipeline. db may be nil when the memory
// vector backend is configured.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Vector Store Backend
	var docRepo contract.AstroDocumentRepository
	if cfg.Ai.VectorBackend == "memory" || db == nil {
		docRepo = memory.NewAstroDocumentRepository()
		log.Printf("[INFO] Using Vector Backend: MEMORY")
	} else {
		docRepo = implementation.NewAstroDocumentRepository(db)
		log.Printf("[INFO] Using Vector Backend: PGVECTOR")
	}

	// 5. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (archive)
	var archive contract.DocumentArchive
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis, archive writes will be skipped: %v", err)
	} else {
		archive = implementation.NewRedisArchiveRepository(rdb)
	}

	// Browser
	browserClient := browser.NewClient(
		cfg.Browser.BaseURL,
		cfg.Keys.BrowserToken,
		time.Duration(cfg.Browser.NavTimeoutSeconds)*time.Second,
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Ingest.EventTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingest.EventTopic,
		logger.NewIsolatedLogger("logs/ingest_events.log"),
	)

	ephemerisService := service.NewEphemerisService(astro.NewCalculator())
	extractorService := service.NewExtractorService(
		service.NewPageBrowser(browserClient),
		llmProvider,
		time.Duration(cfg.Browser.RenderWaitSeconds)*time.Second,
		cfg.Browser.MaxContentChars,
	)
	indexService := service.NewIndexService(docRepo, embeddingProvider)

	ingestionService := service.NewIngestionService(
		ephemerisService,
		extractorService,
		indexService,
		archive,
		publisherService,
		natsPub,
	)
	retrievalService := service.NewRetrievalService(indexService)

	return &Container{
		IngestionService: ingestionService,
		RetrievalService: retrievalService,
		IndexService:     indexService,
		EphemerisService: ephemerisService,
		ConsumerService:  consumerService,
		SysLogger:        sysLogger,
		natsPub:          natsPub,
	}
}

// NewGormDB opens the configured database, or returns nil when the
// memory backend makes the database optional.
func NewGormDB(cfg *config.Config) *gorm.DB {
	if cfg.Ai.VectorBackend == "memory" {
		return nil
	}
	if cfg.Database.Connection == "" {
		log.Fatal("[FATAL] DB_CONNECTION_STRING is not set")
	}
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to database: %v", err)
	}
	return db
}

// Close releases long-lived connections.
func (c *Container) Close() {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.SysLogger != nil {
		_ = c.SysLogger.Sync()
	}
}
