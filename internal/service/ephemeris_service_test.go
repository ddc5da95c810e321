package service

import (
	"strings"
	"testing"
	"time"

	"astro-context-be/pkg/astro"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeReturnsAllTrackedBodies(t *testing.T) {
	svc := NewEphemerisService(astro.NewCalculator())

	snapshot, err := svc.Compute(time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, snapshot.Positions, len(astro.TrackedBodies))

	for _, p := range snapshot.Positions {
		assert.GreaterOrEqual(t, p.Longitude, 0.0, p.Body)
		assert.Less(t, p.Longitude, 360.0, p.Body)
		assert.NotEmpty(t, p.Sign, p.Body)
		assert.Equal(t, p.DailyMotion < 0, p.Retrograde, p.Body)
	}
}

func TestComputeWithoutBackendFails(t *testing.T) {
	svc := NewEphemerisService(nil)

	_, err := svc.Compute(time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrEphemerisUnavailable)
}

func TestFormatForLLMSections(t *testing.T) {
	svc := NewEphemerisService(astro.NewCalculator())

	snapshot, err := svc.Compute(time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	text := svc.FormatForLLM(snapshot)

	assert.Contains(t, text, "**Planetary Positions for 2024-04-25:**")
	assert.Contains(t, text, "**Inner & Outer Planets:**")
	assert.Contains(t, text, "**Generational Planets:**")
	assert.Contains(t, text, "**Lunar Nodes & Asteroids:**")
	assert.Contains(t, text, "**Currently Retrograde:**")
	assert.Contains(t, text, "- North Node: ")
	assert.Contains(t, text, "- Sun: ")

	// The mean node always moves backwards but is listed as a point, not
	// a retrograde planet.
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "- North Node") {
			assert.NotContains(t, line, "(Retrograde)")
		}
	}
}

func TestFormatForLLMEmptySnapshot(t *testing.T) {
	svc := NewEphemerisService(astro.NewCalculator())
	assert.Equal(t, "Planetary position data unavailable.", svc.FormatForLLM(nil))
}

func TestGetRetrogradeBodiesUsesDisplayNames(t *testing.T) {
	svc := NewEphemerisService(astro.NewCalculator())

	// Mercury was retrograde mid-April 2024.
	snapshot, err := svc.Compute(time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	retro := svc.GetRetrogradeBodies(snapshot)
	assert.Contains(t, retro, "Mercury")
	for _, name := range retro {
		assert.Regexp(t, `^[A-Z]`, name)
		assert.NotContains(t, name, "_")
	}
}
