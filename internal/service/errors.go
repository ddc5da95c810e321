package service

import "errors"

// Pipeline failure kinds. The orchestrator records which kind a target
// failed with; none of them abort a run.
var (
	// ErrEphemerisUnavailable means the position backend is missing or the
	// computation failed for the requested date.
	ErrEphemerisUnavailable = errors.New("ephemeris backend unavailable")

	// ErrExtractionEmpty means the model returned nothing usable for a
	// page, even after sanitization.
	ErrExtractionEmpty = errors.New("extraction produced empty content")

	// ErrEmbeddingService wraps failures from the embedding provider.
	ErrEmbeddingService = errors.New("embedding service failed")

	// ErrStoreWrite wraps failures writing to the vector store.
	ErrStoreWrite = errors.New("vector store write failed")
)
