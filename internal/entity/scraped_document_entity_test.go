package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentId(t *testing.T) {
	date := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		source  string
		context string
		want    string
	}{
		{"general context omitted", "tinybuddha", "general", "tinybuddha-2026-08-30"},
		{"empty context omitted", "astro_seek", "", "astro_seek-2026-08-30"},
		{"sign context lowercased", "astrostyle", "Aries", "astrostyle_aries-2026-08-30"},
		{"multi source with sign", "cafeastrology_horoscopes", "Pisces", "cafeastrology_horoscopes_pisces-2026-08-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentId(tt.source, tt.context, date))
		})
	}
}
