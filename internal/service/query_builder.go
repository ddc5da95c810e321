package service

import (
	"fmt"
	"strings"

	"astro-context-be/internal/entity"
	"astro-context-be/pkg/astro"
)

var moodKeywords = map[string]string{
	"great":   "joyful positive uplifting",
	"good":    "balanced harmonious",
	"neutral": "centered grounded",
	"sad":     "emotional healing transformation",
}

var actionThemes = map[string]string{
	"helped":    "service compassion",
	"loved":     "love connection",
	"meditated": "meditation spiritual practice",
	"worked":    "productivity ambition",
	"created":   "creativity manifestation",
	"learned":   "wisdom knowledge",
	"exercised": "vitality physical energy",
	"rested":    "restoration self-care",
	"argued":    "conflict challenge",
	"lied":      "shadow work truth",
}

// BuildSearchQuery turns a reflection profile into the semantic search
// text. Unknown moods and actions pass through verbatim so new journal
// vocabulary still contributes to the query.
func BuildSearchQuery(profile *entity.ReflectionProfile) string {
	parts := []string{fmt.Sprintf("%s zodiac sign", profile.SunSign)}

	if profile.MoonSign != nil && *profile.MoonSign != "" {
		parts = append(parts, fmt.Sprintf("%s moon sign", *profile.MoonSign))
	}

	element := profile.ZodiacElement
	if element == "" {
		element = astro.ElementOf(profile.SunSign)
	}
	parts = append(parts, fmt.Sprintf("%s element energy", element))

	if keywords, ok := moodKeywords[profile.Mood]; ok {
		parts = append(parts, keywords)
	} else if profile.Mood != "" {
		parts = append(parts, profile.Mood)
	}

	actions := profile.Actions
	if len(actions) > 3 {
		actions = actions[:3]
	}
	for _, action := range actions {
		if theme, ok := actionThemes[action]; ok {
			parts = append(parts, theme)
		} else {
			parts = append(parts, action)
		}
	}

	return strings.Join(parts, " ")
}
