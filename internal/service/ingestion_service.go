package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"astro-context-be/internal/catalog"
	"astro-context-be/internal/entity"
	"astro-context-be/internal/repository/contract"
	"astro-context-be/pkg/browser"
	"astro-context-be/pkg/events"
	pktNats "astro-context-be/pkg/nats"

	"github.com/google/uuid"
)

type IIngestionService interface {
	// RunDailyIngestion walks the whole catalog for the date, strictly
	// sequentially, and never aborts on a per-target failure.
	RunDailyIngestion(ctx context.Context, date time.Time) (*entity.IngestionSummary, error)
}

type ingestionService struct {
	ephemerisService IEphemerisService
	extractorService IExtractorService
	indexService     IIndexService
	archive          contract.DocumentArchive
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewIngestionService(
	ephemerisService IEphemerisService,
	extractorService IExtractorService,
	indexService IIndexService,
	archive contract.DocumentArchive,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IIngestionService {
	return &ingestionService{
		ephemerisService: ephemerisService,
		extractorService: extractorService,
		indexService:     indexService,
		archive:          archive,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *ingestionService) RunDailyIngestion(ctx context.Context, date time.Time) (*entity.IngestionSummary, error) {
	day := date.Format("2006-01-02")
	summary := &entity.IngestionSummary{
		RunId:     uuid.NewString(),
		Date:      day,
		Succeeded: []string{},
		Failed:    []entity.TargetFailure{},
	}

	log.Printf("[INFO] Starting ingestion run %s for %s (%d targets + ephemeris)",
		summary.RunId, day, catalog.TotalTargetCount())

	s.ingestEphemeris(ctx, date, summary)

	for _, src := range catalog.EnabledSources() {
		for _, target := range src.Expand() {
			if ctx.Err() != nil {
				log.Printf("[WARN] Ingestion run %s cancelled: %v", summary.RunId, ctx.Err())
				return summary, ctx.Err()
			}
			s.ingestTarget(ctx, date, src, target, summary)
		}
	}

	if summary.Uploaded > 0 {
		s.publishRunCompleted(ctx, summary)
	}

	log.Printf("[INFO] Ingestion run %s finished: %d/%d uploaded, %d failed",
		summary.RunId, summary.Uploaded, summary.Attempted, len(summary.Failed))
	return summary, nil
}

func (s *ingestionService) ingestEphemeris(ctx context.Context, date time.Time, summary *entity.IngestionSummary) {
	day := summary.Date
	docId := fmt.Sprintf("ephemeris-%s", day)
	summary.Attempted++

	snapshot, err := s.ephemerisService.Compute(date)
	if err != nil {
		log.Printf("[WARN] Ephemeris computation failed for %s: %v", day, err)
		s.recordFailure(ctx, summary, docId, failureReason(err))
		return
	}

	formatted := s.ephemerisService.FormatForLLM(snapshot)
	metadata := map[string]interface{}{
		"source":      "ephemeris",
		"context":     "general",
		"date":        day,
		"tags":        []string{"ephemeris", "planetary-positions", "daily"},
		"computed_at": snapshot.ComputedAt.Format(time.RFC3339),
	}

	if err := s.indexService.Store(ctx, docId, formatted, metadata); err != nil {
		log.Printf("[WARN] Failed to index ephemeris document %s: %v", docId, err)
		s.recordFailure(ctx, summary, docId, failureReason(err))
		return
	}

	s.archivePut(ctx, fmt.Sprintf("ephemeris/%s/planetary_positions.json", day), snapshot)
	s.recordSuccess(ctx, summary, docId, "ephemeris", "general")
}

func (s *ingestionService) ingestTarget(ctx context.Context, date time.Time, src catalog.ScrapeSource, target catalog.ScrapeTarget, summary *entity.IngestionSummary) {
	docId := entity.DocumentId(src.Name, target.Context, date)
	summary.Attempted++

	content, err := s.extractorService.Extract(ctx, target.URL, target.Prompt, 0)
	if err != nil {
		log.Printf("[WARN] Extraction failed for %s (%s): %v", docId, target.URL, err)
		s.recordFailure(ctx, summary, docId, failureReason(err))
		return
	}

	scraped := &entity.ScrapedDocument{
		Id:         docId,
		Source:     src.Name,
		Context:    target.Context,
		URL:        target.URL,
		Content:    content,
		Tags:       src.Tags,
		CapturedAt: time.Now().UTC(),
	}
	s.archivePut(ctx, archiveKey(summary.Date, src.Name, target.Context), scraped)

	metadata := map[string]interface{}{
		"source":     src.Name,
		"context":    target.Context,
		"url":        target.URL,
		"date":       summary.Date,
		"tags":       src.Tags,
		"scraped_at": scraped.CapturedAt.Format(time.RFC3339),
	}
	if err := s.indexService.Store(ctx, docId, content, metadata); err != nil {
		log.Printf("[WARN] Failed to index document %s: %v", docId, err)
		s.recordFailure(ctx, summary, docId, failureReason(err))
		return
	}

	s.recordSuccess(ctx, summary, docId, src.Name, target.Context)
}

func (s *ingestionService) recordSuccess(ctx context.Context, summary *entity.IngestionSummary, docId, source, context string) {
	summary.Succeeded = append(summary.Succeeded, docId)
	summary.Uploaded++
	s.publishEvent(ctx, events.NewDocumentCaptured(docId, source, context))
}

func (s *ingestionService) recordFailure(ctx context.Context, summary *entity.IngestionSummary, docId, reason string) {
	summary.Failed = append(summary.Failed, entity.TargetFailure{DocumentId: docId, Reason: reason})
	s.publishEvent(ctx, events.NewTargetFailed(docId, reason))
}

// archivePut writes best-effort; the archive is auxiliary to the index
// and never counts against the run.
func (s *ingestionService) archivePut(ctx context.Context, key string, doc interface{}) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Put(ctx, key, doc); err != nil {
		log.Printf("[WARN] Failed to archive %s: %v", key, err)
	}
}

func (s *ingestionService) publishEvent(ctx context.Context, evt events.BaseEvent) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":        evt.EventType(),
		"data":        evt.Payload(),
		"occurred_at": evt.Timestamp().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", evt.EventType(), err)
	}
}

func (s *ingestionService) publishRunCompleted(ctx context.Context, summary *entity.IngestionSummary) {
	if s.eventPublisher == nil {
		return
	}

	failed := make([]string, len(summary.Failed))
	for i, f := range summary.Failed {
		failed[i] = f.DocumentId
	}
	evt := events.NewIngestRunCompleted(
		summary.RunId, summary.Date,
		summary.Attempted, summary.Uploaded,
		summary.Succeeded, failed,
	)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", events.TypeIngestRunComplete, err)
	}
}

func archiveKey(day, source, context string) string {
	name := source
	if context != "" && context != "general" {
		name = fmt.Sprintf("%s_%s", source, strings.ToLower(context))
	}
	return fmt.Sprintf("daily/%s/%s.json", day, name)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrEphemerisUnavailable):
		return "ephemeris_unavailable"
	case errors.Is(err, browser.ErrNavigationTimeout):
		return "navigation_timeout"
	case errors.Is(err, ErrExtractionEmpty):
		return "extraction_empty"
	case errors.Is(err, ErrEmbeddingService):
		return "embedding_failed"
	case errors.Is(err, ErrStoreWrite):
		return "store_failed"
	default:
		return "error"
	}
}
