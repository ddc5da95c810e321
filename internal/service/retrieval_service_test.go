package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"astro-context-be/internal/entity"
	"astro-context-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leoProfile() *entity.ReflectionProfile {
	return &entity.ReflectionProfile{
		SunSign: "Leo",
		Mood:    "good",
		Actions: []string{"meditated"},
	}
}

func TestQueryFormatsInsights(t *testing.T) {
	repo := memory.NewAstroDocumentRepository()
	embedder := newStubEmbedder()
	indexSvc := NewIndexService(repo, embedder)
	ctx := context.Background()

	require.NoError(t, indexSvc.Store(ctx, "astrostyle_leo-2026-08-30", "Leo:  trust\nyour   instincts today.", nil))

	svc := NewRetrievalService(indexSvc)
	got := svc.Query(ctx, leoProfile())

	assert.True(t, strings.HasPrefix(got, "ENRICHED ASTROLOGICAL CONTEXT (from real-time sources):"))
	assert.Contains(t, got, "Insight 1: Leo: trust your instincts today.")
	assert.True(t, strings.HasSuffix(got, "Use these insights to personalize the reflection."))
}

func TestQueryEmptyIndexReturnsEmptyString(t *testing.T) {
	indexSvc := NewIndexService(memory.NewAstroDocumentRepository(), newStubEmbedder())
	svc := NewRetrievalService(indexSvc)

	assert.Equal(t, "", svc.Query(context.Background(), leoProfile()))
}

func TestQueryEmbeddingFailureDegradesToEmpty(t *testing.T) {
	embedder := newStubEmbedder()
	indexSvc := NewIndexService(memory.NewAstroDocumentRepository(), embedder)
	svc := NewRetrievalService(indexSvc)

	embedder.err = errors.New("provider down")
	assert.Equal(t, "", svc.Query(context.Background(), leoProfile()))
}

func TestQueryCachesByQueryText(t *testing.T) {
	repo := memory.NewAstroDocumentRepository()
	embedder := newStubEmbedder()
	indexSvc := NewIndexService(repo, embedder)
	ctx := context.Background()

	require.NoError(t, indexSvc.Store(ctx, "doc-1", "cached insight", nil))

	svc := NewRetrievalService(indexSvc)
	first := svc.Query(ctx, leoProfile())
	require.Contains(t, first, "cached insight")

	// A provider outage no longer matters once the query is cached.
	embedder.err = errors.New("provider down")
	assert.Equal(t, first, svc.Query(ctx, leoProfile()))
}

func TestQueryNilProfileReturnsEmptyString(t *testing.T) {
	indexSvc := NewIndexService(memory.NewAstroDocumentRepository(), newStubEmbedder())
	svc := NewRetrievalService(indexSvc)

	assert.Equal(t, "", svc.Query(context.Background(), nil))
	assert.Equal(t, "", svc.Query(context.Background(), &entity.ReflectionProfile{}))
}

func TestQueryLimitsToFiveInsights(t *testing.T) {
	repo := memory.NewAstroDocumentRepository()
	indexSvc := NewIndexService(repo, newStubEmbedder())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		require.NoError(t, indexSvc.Store(ctx, id, "insight for "+id, nil))
	}

	svc := NewRetrievalService(indexSvc)
	got := svc.Query(ctx, leoProfile())

	assert.Contains(t, got, "Insight 5:")
	assert.NotContains(t, got, "Insight 6:")
}
