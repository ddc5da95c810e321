package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Source kinds. Sign-specific sources expand to one target per zodiac
// sign; the other two kinds resolve to a single URL.
const (
	KindSignSpecific   = "sign_specific"
	KindCosmicOverview = "cosmic_overview"
	KindArticleBased   = "article_based"
)

// ZodiacSigns in fixed zodiacal order, lowercase for URL substitution.
var ZodiacSigns = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// ScrapeSource configures one site to scrape and how to extract from it.
type ScrapeSource struct {
	Name             string `validate:"required"`
	Kind             string `validate:"required,oneof=sign_specific cosmic_overview article_based"`
	URL              string `validate:"omitempty,url"`
	URLPattern       string
	ExtractionPrompt string `validate:"required"`
	Frequency        string `validate:"required,oneof=daily weekly"`
	Tags             []string
	Enabled          bool
}

// ScrapeTarget is one concrete URL to visit, with its prompt already
// specialized for the target's context.
type ScrapeTarget struct {
	URL     string
	Context string
	Prompt  string
}

// Expand resolves a source into its concrete targets. Sign-specific
// sources substitute {sign} into the URL pattern and the prompt, one
// target per sign with the capitalized sign as context. Single-URL
// sources yield one target with context "general".
func (s ScrapeSource) Expand() []ScrapeTarget {
	switch {
	case s.Kind == KindSignSpecific && s.URLPattern != "":
		targets := make([]ScrapeTarget, 0, len(ZodiacSigns))
		for _, sign := range ZodiacSigns {
			capitalized := strings.ToUpper(sign[:1]) + sign[1:]
			targets = append(targets, ScrapeTarget{
				URL:     strings.ReplaceAll(s.URLPattern, "{sign}", sign),
				Context: capitalized,
				Prompt:  strings.ReplaceAll(s.ExtractionPrompt, "{sign}", capitalized),
			})
		}
		return targets
	case s.URL != "":
		return []ScrapeTarget{{URL: s.URL, Context: "general", Prompt: s.ExtractionPrompt}}
	default:
		return nil
	}
}

// EnabledSources returns the configured sources that are switched on,
// in catalog order.
func EnabledSources() []ScrapeSource {
	var enabled []ScrapeSource
	for _, s := range Sources {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// TotalTargetCount is the number of scrape targets one full run visits.
func TotalTargetCount() int {
	total := 0
	for _, s := range EnabledSources() {
		total += len(s.Expand())
	}
	return total
}

// Validate checks the whole catalog: field constraints, unique names,
// and that sign-specific sources carry a {sign} placeholder.
func Validate() error {
	validate := validator.New()
	seen := make(map[string]bool)

	for _, s := range Sources {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("source %s: %w", s.Name, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("source %s: duplicate name", s.Name)
		}
		seen[s.Name] = true

		if s.Kind == KindSignSpecific && !strings.Contains(s.URLPattern, "{sign}") {
			return fmt.Errorf("source %s: sign_specific url pattern must contain {sign}", s.Name)
		}
	}
	return nil
}
