package contract

import (
	"context"

	"astro-context-be/internal/entity"
)

// ScoredAstroDocument pairs a document with its cosine similarity to a
// query vector.
type ScoredAstroDocument struct {
	Document   *entity.AstroDocument
	Similarity float64
}

type AstroDocumentRepository interface {
	// Upsert replaces the full record keyed by Id. Re-ingesting a day is
	// last-write-wins.
	Upsert(ctx context.Context, doc *entity.AstroDocument) error

	FindById(ctx context.Context, id string) (*entity.AstroDocument, error)

	// SearchSimilarWithScore returns up to limit documents whose cosine
	// similarity to embedding is strictly greater than threshold, most
	// similar first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredAstroDocument, error)

	Count(ctx context.Context) (int64, error)
}
