package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"astro-context-be/internal/entity"
	"astro-context-be/internal/repository/contract"
)

// AstroDocumentRepository is the in-process vector index. It implements
// the same contract as the pgvector-backed repository so the backend is
// swappable by configuration.
type AstroDocumentRepository struct {
	mu   sync.RWMutex
	docs map[string]*entity.AstroDocument
}

func NewAstroDocumentRepository() contract.AstroDocumentRepository {
	return &AstroDocumentRepository{
		docs: make(map[string]*entity.AstroDocument),
	}
}

func (r *AstroDocumentRepository) Upsert(ctx context.Context, doc *entity.AstroDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *doc
	if existing, ok := r.docs[doc.Id]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = &now

	r.docs[doc.Id] = &stored
	*doc = stored
	return nil
}

func (r *AstroDocumentRepository) FindById(ctx context.Context, id string) (*entity.AstroDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	copied := *doc
	return &copied, nil
}

func (r *AstroDocumentRepository) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredAstroDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var scored []*contract.ScoredAstroDocument
	for _, doc := range r.docs {
		sim := cosineSimilarity(embedding, doc.Embedding)
		if sim > threshold {
			copied := *doc
			scored = append(scored, &contract.ScoredAstroDocument{
				Document:   &copied,
				Similarity: sim,
			})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func (r *AstroDocumentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
