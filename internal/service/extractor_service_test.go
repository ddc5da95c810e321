package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"astro-context-be/pkg/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSendsPromptWithPageContent(t *testing.T) {
	pageBrowser := &stubBrowser{content: "rendered page text"}
	llmStub := &stubLLM{reply: "Daily horoscope: a good day."}
	svc := NewExtractorService(pageBrowser, llmStub, 0, 15000)

	got, err := svc.Extract(context.Background(), "https://astrostyle.com/horoscopes/daily/leo/", "Extract the horoscope.", 0)
	require.NoError(t, err)

	assert.Equal(t, "Daily horoscope: a good day.", got)
	assert.Contains(t, llmStub.lastPrompt, "Extract the horoscope.")
	assert.Contains(t, llmStub.lastPrompt, "rendered page text")
	assert.InDelta(t, 0.1, llmStub.lastOpts.Temperature, 1e-9)
	assert.Equal(t, 4096, llmStub.lastOpts.MaxTokens)
	assert.True(t, pageBrowser.allClosed())
}

func TestExtractTruncatesLongPages(t *testing.T) {
	pageBrowser := &stubBrowser{content: strings.Repeat("x", 20000)}
	llmStub := &stubLLM{reply: "ok"}
	svc := NewExtractorService(pageBrowser, llmStub, 0, 15000)

	_, err := svc.Extract(context.Background(), "https://example.com/", "Extract.", 0)
	require.NoError(t, err)

	// Prompt carries at most the truncated page plus the instruction text.
	assert.Less(t, len(llmStub.lastPrompt), 15200)
}

func TestExtractEmptyReplyFails(t *testing.T) {
	pageBrowser := &stubBrowser{content: "page"}
	llmStub := &stubLLM{reply: "  \n\x00\x08  "}
	svc := NewExtractorService(pageBrowser, llmStub, 0, 15000)

	_, err := svc.Extract(context.Background(), "https://example.com/", "Extract.", 0)
	require.ErrorIs(t, err, ErrExtractionEmpty)
	assert.True(t, pageBrowser.allClosed())
}

func TestExtractNavigationTimeoutPropagates(t *testing.T) {
	pageBrowser := &stubBrowser{navErr: browser.ErrNavigationTimeout}
	svc := NewExtractorService(pageBrowser, &stubLLM{reply: "never reached"}, 0, 15000)

	_, err := svc.Extract(context.Background(), "https://slow.example.com/", "Extract.", 0)
	require.ErrorIs(t, err, browser.ErrNavigationTimeout)
	assert.True(t, pageBrowser.allClosed())
}

func TestExtractSessionOpenFailure(t *testing.T) {
	pageBrowser := &stubBrowser{openErr: errors.New("service down")}
	svc := NewExtractorService(pageBrowser, &stubLLM{}, 0, 15000)

	_, err := svc.Extract(context.Background(), "https://example.com/", "Extract.", 0)
	require.Error(t, err)
}
