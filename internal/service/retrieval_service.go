package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"astro-context-be/internal/entity"
	"astro-context-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const (
	retrievalMaxResults = 5
	retrievalThreshold  = 0.3
)

type IRetrievalService interface {
	// Query returns the formatted context block for a profile, or "" when
	// nothing relevant is indexed. It never returns an error; a reflection
	// still works without enrichment.
	Query(ctx context.Context, profile *entity.ReflectionProfile) string
}

type retrievalService struct {
	indexService IIndexService
	resultCache  *cache.Cache
}

func NewRetrievalService(indexService IIndexService) IRetrievalService {
	return &retrievalService{
		indexService: indexService,
		// Identical profiles within a few minutes hit the same daily
		// documents, so short-lived caching skips the embedding call.
		resultCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *retrievalService) Query(ctx context.Context, profile *entity.ReflectionProfile) string {
	if profile == nil || profile.SunSign == "" {
		return ""
	}

	query := BuildSearchQuery(profile)
	if cached, found := s.resultCache.Get(query); found {
		return cached.(string)
	}

	results, err := s.indexService.Search(ctx, query, retrievalMaxResults, retrievalThreshold)
	if err != nil {
		log.Printf("[WARN] Context retrieval failed: %v", err)
		return ""
	}

	formatted := formatInsights(results)
	s.resultCache.Set(query, formatted, cache.DefaultExpiration)
	return formatted
}

func formatInsights(results []*contract.ScoredAstroDocument) string {
	var chunks []string
	for i, res := range results {
		content := collapseWhitespace(res.Document.Content)
		if content == "" {
			continue
		}
		chunks = append(chunks, fmt.Sprintf("Insight %d: %s", i+1, content))
	}
	if len(chunks) == 0 {
		return ""
	}

	return fmt.Sprintf(`ENRICHED ASTROLOGICAL CONTEXT (from real-time sources):

%s

Use these insights to personalize the reflection.`, strings.Join(chunks, "\n\n"))
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
