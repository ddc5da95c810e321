package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"astro-context-be/pkg/browser"
	"astro-context-be/pkg/llm"
)

// PageSession is one isolated browser context, matching pkg/browser's
// session surface so tests can stand in for the remote service.
type PageSession interface {
	Navigate(ctx context.Context, url string) error
	TextContent(ctx context.Context) (string, error)
	Close() error
}

// PageBrowser opens page sessions.
type PageBrowser interface {
	OpenSession(ctx context.Context) (PageSession, error)
}

// NewPageBrowser wraps the REST browser client in the PageBrowser surface.
func NewPageBrowser(client *browser.Client) PageBrowser {
	return &browserAdapter{client: client}
}

type browserAdapter struct {
	client *browser.Client
}

func (b *browserAdapter) OpenSession(ctx context.Context) (PageSession, error) {
	return b.client.OpenSession(ctx)
}

type IExtractorService interface {
	// Extract renders the page and asks the model to pull structured
	// content per the prompt. renderWait <= 0 falls back to the configured
	// default. No retries; the orchestrator decides what a failure means.
	Extract(ctx context.Context, url, prompt string, renderWait time.Duration) (string, error)
}

type extractorService struct {
	browser         PageBrowser
	llmProvider     llm.LLMProvider
	renderWait      time.Duration
	maxContentChars int
}

func NewExtractorService(
	pageBrowser PageBrowser,
	llmProvider llm.LLMProvider,
	renderWait time.Duration,
	maxContentChars int,
) IExtractorService {
	if maxContentChars <= 0 {
		maxContentChars = 15000
	}
	return &extractorService{
		browser:         pageBrowser,
		llmProvider:     llmProvider,
		renderWait:      renderWait,
		maxContentChars: maxContentChars,
	}
}

func (s *extractorService) Extract(ctx context.Context, url, prompt string, renderWait time.Duration) (string, error) {
	if renderWait <= 0 {
		renderWait = s.renderWait
	}

	session, err := s.browser.OpenSession(ctx)
	if err != nil {
		return "", err
	}
	defer session.Close()

	if err := session.Navigate(ctx, url); err != nil {
		return "", err
	}

	// Give client-side rendering a moment to fill the page in.
	if renderWait > 0 {
		select {
		case <-time.After(renderWait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	content, err := session.TextContent(ctx)
	if err != nil {
		return "", err
	}

	// Long pages are truncated, not failed; the useful content sits at
	// the top for every catalog source.
	if len(content) > s.maxContentChars {
		content = content[:s.maxContentChars]
	}

	fullPrompt := fmt.Sprintf("%s\n\nPage content:\n%s", prompt, content)
	reply, err := s.llmProvider.Generate(ctx, fullPrompt,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(4096),
	)
	if err != nil {
		return "", fmt.Errorf("llm extraction failed for %s: %w", url, err)
	}

	cleaned := strings.TrimSpace(sanitizeExtraction(reply))
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrExtractionEmpty, url)
	}
	return cleaned, nil
}

// sanitizeExtraction strips control characters the model occasionally
// emits around quoted page text. Newlines and tabs survive.
func sanitizeExtraction(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
