package entity

// ReflectionProfile describes the user state a retrieval query is built
// from. Mood is one of "great", "good", "neutral", "sad". ZodiacElement
// is derived from SunSign when left empty.
type ReflectionProfile struct {
	SunSign       string
	MoonSign      *string
	Mood          string
	Actions       []string
	ZodiacElement string
}
