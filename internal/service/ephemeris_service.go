package service

import (
	"fmt"
	"strings"
	"time"

	"astro-context-be/internal/entity"
	"astro-context-be/pkg/astro"
)

// PositionCalculator computes one geocentric ecliptic position. The
// analytic calculator in pkg/astro is the production implementation.
type PositionCalculator interface {
	Position(jd float64, body astro.Body) (astro.Position, error)
}

type IEphemerisService interface {
	Compute(date time.Time) (*entity.EphemerisSnapshot, error)
	FormatForLLM(snapshot *entity.EphemerisSnapshot) string
	GetRetrogradeBodies(snapshot *entity.EphemerisSnapshot) []string
}

type ephemerisService struct {
	calc PositionCalculator
}

func NewEphemerisService(calc PositionCalculator) IEphemerisService {
	return &ephemerisService{calc: calc}
}

// Compute returns the full snapshot for the date at solar noon UTC. Any
// single body failing fails the whole snapshot; partial position sets
// would poison downstream formatting.
func (s *ephemerisService) Compute(date time.Time) (*entity.EphemerisSnapshot, error) {
	if s.calc == nil {
		return nil, ErrEphemerisUnavailable
	}

	jd := astro.JulianDayNoon(date)
	positions := make([]entity.BodyPosition, 0, len(astro.TrackedBodies))

	for _, body := range astro.TrackedBodies {
		pos, err := s.calc.Position(jd, body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEphemerisUnavailable, body, err)
		}

		info := astro.SignFromLongitude(pos.Longitude)
		positions = append(positions, entity.BodyPosition{
			Body:          string(body),
			Longitude:     pos.Longitude,
			Sign:          info.Sign,
			DegreesInSign: info.DegreesInSign,
			Formatted:     info.Formatted,
			DailyMotion:   pos.DailyMotion,
			Retrograde:    pos.DailyMotion < 0,
		})
	}

	return &entity.EphemerisSnapshot{
		Date:       date,
		JulianDay:  jd,
		Positions:  positions,
		ComputedAt: time.Now().UTC(),
	}, nil
}

// GetRetrogradeBodies lists the display names of retrograde bodies in
// snapshot order.
func (s *ephemerisService) GetRetrogradeBodies(snapshot *entity.EphemerisSnapshot) []string {
	var retro []string
	for _, p := range snapshot.Positions {
		if p.Retrograde {
			retro = append(retro, displayName(p.Body))
		}
	}
	return retro
}

// FormatForLLM renders the snapshot as sectioned text for prompt context.
func (s *ephemerisService) FormatForLLM(snapshot *entity.EphemerisSnapshot) string {
	if snapshot == nil || len(snapshot.Positions) == 0 {
		return "Planetary position data unavailable."
	}

	byBody := make(map[string]entity.BodyPosition, len(snapshot.Positions))
	for _, p := range snapshot.Positions {
		byBody[p.Body] = p
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("**Planetary Positions for %s:**\n", snapshot.Date.Format("2006-01-02")))

	lines = append(lines, "**Inner & Outer Planets:**")
	for _, body := range []string{"sun", "moon", "mercury", "venus", "mars", "jupiter", "saturn"} {
		if p, ok := byBody[body]; ok {
			lines = append(lines, formatBodyLine(p, true))
		}
	}

	lines = append(lines, "\n**Generational Planets:**")
	for _, body := range []string{"uranus", "neptune", "pluto"} {
		if p, ok := byBody[body]; ok {
			lines = append(lines, formatBodyLine(p, true))
		}
	}

	lines = append(lines, "\n**Lunar Nodes & Asteroids:**")
	for _, body := range []string{"north_node", "chiron"} {
		if p, ok := byBody[body]; ok {
			lines = append(lines, formatBodyLine(p, false))
		}
	}

	if retro := s.GetRetrogradeBodies(snapshot); len(retro) > 0 {
		lines = append(lines, fmt.Sprintf("\n**Currently Retrograde:** %s", strings.Join(retro, ", ")))
	} else {
		lines = append(lines, "\n**Currently Retrograde:** None")
	}

	return strings.Join(lines, "\n")
}

func formatBodyLine(p entity.BodyPosition, markRetrograde bool) string {
	retro := ""
	if markRetrograde && p.Retrograde {
		retro = " (Retrograde)"
	}
	return fmt.Sprintf("- %s: %s%s", displayName(p.Body), p.Formatted, retro)
}

// displayName turns a body key into its display form, "north_node"
// becoming "North Node".
func displayName(body string) string {
	parts := strings.Split(body, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
