package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidates(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSignSpecificExpandsToTwelveTargets(t *testing.T) {
	src := ScrapeSource{
		Name:             "astrostyle",
		Kind:             KindSignSpecific,
		URLPattern:       "https://astrostyle.com/horoscopes/daily/{sign}/",
		ExtractionPrompt: "Extract the horoscope for {sign}.",
		Frequency:        "daily",
		Enabled:          true,
	}

	targets := src.Expand()
	require.Len(t, targets, 12)

	assert.Equal(t, "https://astrostyle.com/horoscopes/daily/aries/", targets[0].URL)
	assert.Equal(t, "Aries", targets[0].Context)
	assert.Equal(t, "Extract the horoscope for Aries.", targets[0].Prompt)

	assert.Equal(t, "https://astrostyle.com/horoscopes/daily/pisces/", targets[11].URL)
	assert.Equal(t, "Pisces", targets[11].Context)

	for _, tgt := range targets {
		assert.NotContains(t, tgt.URL, "{sign}")
		assert.NotContains(t, tgt.Prompt, "{sign}")
	}
}

func TestSingleURLSourceExpandsToOneGeneralTarget(t *testing.T) {
	src := ScrapeSource{
		Name:             "tinybuddha",
		Kind:             KindCosmicOverview,
		URL:              "https://tinybuddha.com/",
		ExtractionPrompt: "Extract the featured teaching.",
		Frequency:        "daily",
		Enabled:          true,
	}

	targets := src.Expand()
	require.Len(t, targets, 1)
	assert.Equal(t, "https://tinybuddha.com/", targets[0].URL)
	assert.Equal(t, "general", targets[0].Context)
}

func TestSourceWithoutURLExpandsToNothing(t *testing.T) {
	src := ScrapeSource{Name: "broken", Kind: KindCosmicOverview}
	assert.Empty(t, src.Expand())
}

func TestEnabledSourcesSkipDisabled(t *testing.T) {
	for _, s := range EnabledSources() {
		assert.True(t, s.Enabled)
		assert.NotEqual(t, "cafeastrology_cosmic_overview", s.Name)
	}
}

func TestTotalTargetCountMatchesExpansion(t *testing.T) {
	// Two sign-specific sources and two single-URL sources are enabled.
	assert.Equal(t, 12+12+1+1, TotalTargetCount())
}

func TestValidateRejectsSignSpecificWithoutPlaceholder(t *testing.T) {
	original := Sources
	defer func() { Sources = original }()

	Sources = []ScrapeSource{{
		Name:             "bad",
		Kind:             KindSignSpecific,
		URLPattern:       "https://example.com/daily/",
		ExtractionPrompt: "Extract.",
		Frequency:        "daily",
		Enabled:          true,
	}}

	err := Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "{sign}"))
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	original := Sources
	defer func() { Sources = original }()

	dup := ScrapeSource{
		Name:             "dup",
		Kind:             KindCosmicOverview,
		URL:              "https://example.com/",
		ExtractionPrompt: "Extract.",
		Frequency:        "daily",
	}
	Sources = []ScrapeSource{dup, dup}

	require.Error(t, Validate())
}
