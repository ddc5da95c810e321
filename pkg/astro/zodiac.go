package astro

import (
	"fmt"
	"math"
	"strings"
)

// Signs in fixed zodiacal order. Sign N covers [N*30, (N+1)*30) degrees
// of ecliptic longitude.
var Signs = []string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var elements = map[string]string{
	"Aries":       "Fire",
	"Taurus":      "Earth",
	"Gemini":      "Air",
	"Cancer":      "Water",
	"Leo":         "Fire",
	"Virgo":       "Earth",
	"Libra":       "Air",
	"Scorpio":     "Water",
	"Sagittarius": "Fire",
	"Capricorn":   "Earth",
	"Aquarius":    "Air",
	"Pisces":      "Water",
}

// SignInfo is the zodiacal decomposition of an ecliptic longitude.
type SignInfo struct {
	Sign          string
	DegreesInSign float64
	Formatted     string // e.g. `14°32' Leo`
}

// SignFromLongitude maps an ecliptic longitude (any value, degrees) to its
// zodiac sign. Exactly one sign matches: the longitude is normalized to
// [0, 360) and divided into twelve 30-degree bands.
func SignFromLongitude(longitude float64) SignInfo {
	lon := NormalizeDegrees(longitude)
	idx := int(lon / 30.0)
	if idx > 11 {
		idx = 11 // guards lon == 360 after float rounding
	}
	inSign := lon - float64(idx)*30.0

	deg := int(inSign)
	minutes := int((inSign - float64(deg)) * 60.0)

	return SignInfo{
		Sign:          Signs[idx],
		DegreesInSign: inSign,
		Formatted:     fmt.Sprintf("%d°%d' %s", deg, minutes, Signs[idx]),
	}
}

// ElementOf returns the classical element (Fire, Earth, Air, Water) for a
// zodiac sign. Lookup is case-insensitive; unknown signs map to "Unknown".
func ElementOf(sign string) string {
	for name, element := range elements {
		if strings.EqualFold(name, sign) {
			return element
		}
	}
	return "Unknown"
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
