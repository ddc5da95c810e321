package memory

import (
	"context"
	"testing"

	"astro-context-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertIsIdempotentById(t *testing.T) {
	repo := NewAstroDocumentRepository()
	ctx := context.Background()

	first := &entity.AstroDocument{
		Id:        "astrostyle-2026-08-30",
		Content:   "original content",
		Embedding: []float32{1, 0, 0},
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &entity.AstroDocument{
		Id:        "astrostyle-2026-08-30",
		Content:   "replacement content",
		Embedding: []float32{0, 1, 0},
	}
	require.NoError(t, repo.Upsert(ctx, second))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.FindById(ctx, "astrostyle-2026-08-30")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "replacement content", got.Content)
	assert.Equal(t, []float32{0, 1, 0}, got.Embedding)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)
	assert.NotNil(t, got.UpdatedAt)
}

func TestSearchSimilarOrdersByDescendingSimilarity(t *testing.T) {
	repo := NewAstroDocumentRepository()
	ctx := context.Background()

	docs := []*entity.AstroDocument{
		{Id: "far", Embedding: []float32{0, 1, 0}},
		{Id: "near", Embedding: []float32{0.9, 0.1, 0}},
		{Id: "exact", Embedding: []float32{1, 0, 0}},
	}
	for _, d := range docs {
		require.NoError(t, repo.Upsert(ctx, d))
	}

	results, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0, 0}, 10, -1)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "exact", results[0].Document.Id)
	assert.Equal(t, "near", results[1].Document.Id)
	assert.Equal(t, "far", results[2].Document.Id)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
}

func TestSearchSimilarThresholdIsExclusive(t *testing.T) {
	repo := NewAstroDocumentRepository()
	ctx := context.Background()

	// Orthogonal vector scores exactly 0.0 similarity.
	require.NoError(t, repo.Upsert(ctx, &entity.AstroDocument{
		Id:        "orthogonal",
		Embedding: []float32{0, 1, 0},
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.AstroDocument{
		Id:        "aligned",
		Embedding: []float32{1, 0, 0},
	}))

	results, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0, 0}, 10, 0.0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "aligned", results[0].Document.Id)
}

func TestSearchSimilarHonorsLimit(t *testing.T) {
	repo := NewAstroDocumentRepository()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Upsert(ctx, &entity.AstroDocument{
			Id:        id,
			Embedding: []float32{1, 0, 0},
		}))
	}

	results, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0, 0}, 2, 0.5)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestFindByIdMissingReturnsNil(t *testing.T) {
	repo := NewAstroDocumentRepository()

	got, err := repo.FindById(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}
