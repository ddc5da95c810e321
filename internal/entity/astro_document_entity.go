package entity

import "time"

// AstroDocument is an indexed unit of astrological context. The Id is
// deterministic per source and date, so re-ingesting a day overwrites
// rather than duplicates.
type AstroDocument struct {
	Id        string
	Content   string
	Metadata  map[string]interface{}
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt *time.Time
}
