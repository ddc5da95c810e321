package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"astro-context-be/pkg/embedding"
	"astro-context-be/pkg/llm"
)

// stubEmbedder returns fixed vectors per text, falling back to a default
// vector, so similarity outcomes are exact and repeatable.
type stubEmbedder struct {
	vectors     map[string][]float32
	fallbackVec []float32
	err         error
}

func newStubEmbedder() *stubEmbedder {
	return &stubEmbedder{
		vectors:     map[string][]float32{},
		fallbackVec: []float32{1, 0, 0},
	}
}

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	vec, ok := s.vectors[text]
	if !ok {
		vec = s.fallbackVec
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: vec},
	}, nil
}

// stubLLM replies with a canned string and records the last prompt.
type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
	lastOpts   llm.Options
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	for _, opt := range options {
		opt(&s.lastOpts)
	}
	return s.reply, s.err
}

// stubBrowser hands out stubSessions and tracks that each one is closed.
type stubBrowser struct {
	mu       sync.Mutex
	content  string
	navErr   error
	openErr  error
	sessions []*stubSession
}

func (b *stubBrowser) OpenSession(ctx context.Context) (PageSession, error) {
	if b.openErr != nil {
		return nil, b.openErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	session := &stubSession{content: b.content, navErr: b.navErr}
	b.sessions = append(b.sessions, session)
	return session, nil
}

func (b *stubBrowser) allClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.sessions {
		if !s.closed {
			return false
		}
	}
	return len(b.sessions) > 0
}

type stubSession struct {
	content string
	navErr  error
	closed  bool
}

func (s *stubSession) Navigate(ctx context.Context, url string) error {
	return s.navErr
}

func (s *stubSession) TextContent(ctx context.Context) (string, error) {
	return s.content, nil
}

func (s *stubSession) Close() error {
	s.closed = true
	return nil
}

// stubExtractor returns canned content, with optional per-URL failures.
type stubExtractor struct {
	content string
	failURL map[string]error
	calls   int
}

func (s *stubExtractor) Extract(ctx context.Context, url, prompt string, renderWait time.Duration) (string, error) {
	s.calls++
	if err, ok := s.failURL[url]; ok {
		return "", err
	}
	return s.content, nil
}

// stubArchive records every Put.
type stubArchive struct {
	mu   sync.Mutex
	puts map[string]interface{}
	err  error
}

func newStubArchive() *stubArchive {
	return &stubArchive{puts: map[string]interface{}{}}
}

func (a *stubArchive) Put(ctx context.Context, key string, doc interface{}) error {
	if a.err != nil {
		return a.err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.puts[key] = doc
	return nil
}

func (a *stubArchive) Get(ctx context.Context, key string, out interface{}) error {
	return errors.New("not implemented")
}
