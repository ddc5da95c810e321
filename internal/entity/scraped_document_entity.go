package entity

import (
	"fmt"
	"strings"
	"time"
)

// ScrapedDocument is the extractor output for a single scrape target,
// before embedding and indexing.
type ScrapedDocument struct {
	Id         string    `json:"id"`
	Source     string    `json:"source"`
	Context    string    `json:"context"`
	URL        string    `json:"url"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CapturedAt time.Time `json:"captured_at"`
}

// DocumentId builds the deterministic document id for a target on a date.
// Sign-specific targets carry their context so the twelve variants of one
// source do not collide.
func DocumentId(source, context string, date time.Time) string {
	day := date.Format("2006-01-02")
	if context == "" || context == "general" {
		return fmt.Sprintf("%s-%s", source, day)
	}
	return fmt.Sprintf("%s_%s-%s", source, strings.ToLower(context), day)
}
