package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "INGEST_RUN_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across the pipeline.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Ingestion lifecycle event types.
const (
	TypeDocumentCaptured  = "DOCUMENT_CAPTURED"
	TypeTargetFailed      = "TARGET_FAILED"
	TypeIngestRunComplete = "INGEST_RUN_COMPLETED"
)

// NewDocumentCaptured marks one scrape target successfully extracted and
// indexed.
func NewDocumentCaptured(documentId, source, context string) BaseEvent {
	return BaseEvent{
		Type: TypeDocumentCaptured,
		Data: map[string]interface{}{
			"document_id": documentId,
			"source":      source,
			"context":     context,
		},
		OccurredAt: time.Now(),
	}
}

// NewTargetFailed marks one scrape target as failed with its failure kind.
func NewTargetFailed(documentId, reason string) BaseEvent {
	return BaseEvent{
		Type: TypeTargetFailed,
		Data: map[string]interface{}{
			"document_id": documentId,
			"reason":      reason,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestRunCompleted carries the run summary for the scheduling
// collaborator.
func NewIngestRunCompleted(runId, date string, attempted, uploaded int, succeeded, failed []string) BaseEvent {
	return BaseEvent{
		Type: TypeIngestRunComplete,
		Data: map[string]interface{}{
			"run_id":    runId,
			"date":      date,
			"attempted": attempted,
			"uploaded":  uploaded,
			"succeeded": succeeded,
			"failed":    failed,
		},
		OccurredAt: time.Now(),
	}
}
