package astro

import (
	"math"
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestJulianDayNoon(t *testing.T) {
	// J2000.0 epoch is 2000-01-01 12:00 UT = JD 2451545.0
	got := JulianDayNoon(date(2000, 1, 1))
	if math.Abs(got-2451545.0) > 1e-6 {
		t.Errorf("JulianDayNoon(2000-01-01) = %f, want 2451545.0", got)
	}
}

// Reference sun-sign assignments for fixed historical dates, all well clear
// of sign boundaries.
func TestSunSignRegression(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		date     time.Time
		wantSign string
	}{
		{date(2000, 1, 1), "Capricorn"},
		{date(2010, 11, 1), "Scorpio"},
		{date(2023, 8, 8), "Leo"},
		{date(2024, 4, 25), "Taurus"},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			pos, err := calc.Position(JulianDayNoon(tt.date), BodySun)
			if err != nil {
				t.Fatalf("Position: %v", err)
			}
			if got := SignFromLongitude(pos.Longitude).Sign; got != tt.wantSign {
				t.Errorf("sun sign = %s (lon %.3f), want %s", got, pos.Longitude, tt.wantSign)
			}
		})
	}
}

func TestAllBodiesInRange(t *testing.T) {
	calc := NewCalculator()

	dates := []time.Time{
		date(1995, 3, 14),
		date(2005, 9, 2),
		date(2020, 12, 21),
		date(2026, 8, 30),
	}

	for _, d := range dates {
		jd := JulianDayNoon(d)
		for _, body := range TrackedBodies {
			pos, err := calc.Position(jd, body)
			if err != nil {
				t.Fatalf("%s on %s: %v", body, d.Format("2006-01-02"), err)
			}
			if pos.Longitude < 0 || pos.Longitude >= 360 {
				t.Errorf("%s longitude %f out of [0,360)", body, pos.Longitude)
			}
			info := SignFromLongitude(pos.Longitude)
			if info.DegreesInSign < 0 || info.DegreesInSign >= 30 {
				t.Errorf("%s DegreesInSign %f out of [0,30)", body, info.DegreesInSign)
			}
		}
	}
}

func TestLuminariesNeverRetrograde(t *testing.T) {
	calc := NewCalculator()

	for _, d := range []time.Time{date(2001, 2, 2), date(2014, 7, 19), date(2024, 10, 5)} {
		jd := JulianDayNoon(d)
		for _, body := range []Body{BodySun, BodyMoon} {
			pos, err := calc.Position(jd, body)
			if err != nil {
				t.Fatalf("%s: %v", body, err)
			}
			if pos.DailyMotion <= 0 {
				t.Errorf("%s daily motion %f on %s, luminaries always move forward",
					body, pos.DailyMotion, d.Format("2006-01-02"))
			}
		}
	}
}

func TestMercuryRetrogradePeriod(t *testing.T) {
	calc := NewCalculator()

	// Mercury stationed retrograde 2024-04-01 and direct 2024-04-25;
	// mid-period apparent motion is strongly negative.
	pos, err := calc.Position(JulianDayNoon(date(2024, 4, 12)), BodyMercury)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if pos.DailyMotion >= 0 {
		t.Errorf("mercury daily motion = %f on 2024-04-12, want negative", pos.DailyMotion)
	}

	// Well outside any 2024 retrograde window.
	pos, err = calc.Position(JulianDayNoon(date(2024, 6, 15)), BodyMercury)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if pos.DailyMotion <= 0 {
		t.Errorf("mercury daily motion = %f on 2024-06-15, want positive", pos.DailyMotion)
	}
}

func TestNodeAlwaysRegresses(t *testing.T) {
	calc := NewCalculator()

	for _, d := range []time.Time{date(1999, 1, 1), date(2012, 6, 1), date(2025, 3, 3)} {
		pos, err := calc.Position(JulianDayNoon(d), BodyNorthNode)
		if err != nil {
			t.Fatalf("Position: %v", err)
		}
		if pos.DailyMotion >= 0 {
			t.Errorf("node daily motion %f on %s, want negative", pos.DailyMotion, d.Format("2006-01-02"))
		}
	}
}

func TestMoonMovesRoughlyThirteenDegreesPerDay(t *testing.T) {
	calc := NewCalculator()

	pos, err := calc.Position(JulianDayNoon(date(2022, 5, 10)), BodyMoon)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if pos.DailyMotion < 11 || pos.DailyMotion > 16 {
		t.Errorf("moon daily motion = %f, expected around 13 deg/day", pos.DailyMotion)
	}
}
