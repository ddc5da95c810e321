package service

import (
	"context"
	"fmt"
	"time"

	"astro-context-be/internal/entity"
	"astro-context-be/internal/repository/contract"
	"astro-context-be/pkg/embedding"
)

type IIndexService interface {
	// Store embeds content and upserts the document under id. Writes are
	// last-write-wins so the daily job can safely re-run.
	Store(ctx context.Context, id, content string, metadata map[string]interface{}) error

	// Search returns documents with similarity strictly above threshold,
	// most similar first.
	Search(ctx context.Context, query string, maxResults int, threshold float64) ([]*contract.ScoredAstroDocument, error)

	Count(ctx context.Context) (int64, error)
}

type indexService struct {
	repo              contract.AstroDocumentRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewIndexService(
	repo contract.AstroDocumentRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IIndexService {
	return &indexService{
		repo:              repo,
		embeddingProvider: embeddingProvider,
	}
}

func (s *indexService) Store(ctx context.Context, id, content string, metadata map[string]interface{}) error {
	res, err := s.embeddingProvider.Generate(content, embedding.TaskRetrievalDocument)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmbeddingService, err)
	}

	doc := &entity.AstroDocument{
		Id:        id,
		Content:   content,
		Metadata:  metadata,
		Embedding: res.Embedding.Values,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

func (s *indexService) Search(ctx context.Context, query string, maxResults int, threshold float64) ([]*contract.ScoredAstroDocument, error) {
	res, err := s.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingService, err)
	}

	results, err := s.repo.SearchSimilarWithScore(ctx, res.Embedding.Values, maxResults, threshold)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*contract.ScoredAstroDocument{}
	}
	return results, nil
}

func (s *indexService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
