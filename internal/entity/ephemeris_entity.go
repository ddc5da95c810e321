package entity

import "time"

// BodyPosition is the computed placement of one celestial body on a date.
type BodyPosition struct {
	Body          string  `json:"body"`
	Longitude     float64 `json:"longitude"`
	Sign          string  `json:"sign"`
	DegreesInSign float64 `json:"degrees_in_sign"`
	Formatted     string  `json:"formatted"`
	DailyMotion   float64 `json:"daily_motion"`
	Retrograde    bool    `json:"retrograde"`
}

// EphemerisSnapshot holds the full set of tracked placements for one day.
type EphemerisSnapshot struct {
	Date       time.Time      `json:"date"`
	JulianDay  float64        `json:"julian_day"`
	Positions  []BodyPosition `json:"positions"`
	ComputedAt time.Time      `json:"computed_at"`
}
