package astro

import (
	"fmt"
	"math"
	"time"
)

// Body identifies a tracked celestial body or calculated point.
type Body string

const (
	BodySun       Body = "sun"
	BodyMoon      Body = "moon"
	BodyMercury   Body = "mercury"
	BodyVenus     Body = "venus"
	BodyMars      Body = "mars"
	BodyJupiter   Body = "jupiter"
	BodySaturn    Body = "saturn"
	BodyUranus    Body = "uranus"
	BodyNeptune   Body = "neptune"
	BodyPluto     Body = "pluto"
	BodyNorthNode Body = "north_node"
	BodyChiron    Body = "chiron"
)

// TrackedBodies lists every body the calculator reports, in output order.
var TrackedBodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
	BodyNorthNode, BodyChiron,
}

// Position is a geocentric ecliptic position with its instantaneous rate.
type Position struct {
	Longitude   float64 // degrees, [0, 360)
	DailyMotion float64 // degrees/day, negative while retrograde
}

const (
	j2000     = 2451545.0
	radPerDeg = math.Pi / 180.0
	degPerRad = 180.0 / math.Pi
)

// Keplerian mean elements referred to the mean ecliptic of J2000, with
// per-Julian-century rates (Standish approximate elements, valid 1800-2050).
type orbitalElements struct {
	a, aDot       float64 // semi-major axis, au
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination, deg
	l, lDot       float64 // mean longitude, deg
	peri, periDot float64 // longitude of perihelion, deg
	node, nodeDot float64 // longitude of ascending node, deg
}

var planetElements = map[Body]orbitalElements{
	BodyMercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	BodyVenus:   {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	BodyMars:    {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, -4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	BodyJupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	BodySaturn:  {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	BodyUranus:  {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939, 313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	BodyNeptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372, -55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
	BodyPluto:   {39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818, 238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482},
}

// Earth-Moon barycenter. Used for every geocentric conversion.
var earthElements = orbitalElements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0.0, 0.0}

// Chiron is not covered by the mean-element table; these are approximate
// osculating elements around J2000 (period ~50.4 years). Accuracy is a
// fraction of a degree, enough for sign placement and retrograde detection.
var chironElements = struct {
	a, e, i, node, argPeri float64
	m0                     float64 // mean anomaly at J2000, deg
	n                      float64 // mean motion, deg/day
}{
	a: 13.6702, e: 0.38308, i: 6.9352, node: 209.3855, argPeri: 339.457,
	m0: 27.72, n: 0.019564,
}

// Calculator computes geocentric ecliptic longitudes from bundled analytic
// series. It performs no I/O and is safe for concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// JulianDay converts a UTC calendar date plus fractional hour to a Julian day.
func JulianDay(year, month, day int, hour float64) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := year / 100
	b := 2 - a + a/4
	jd := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5
	return jd + hour/24.0
}

// JulianDayNoon returns the Julian day for solar noon UTC of the given date.
func JulianDayNoon(date time.Time) float64 {
	return JulianDay(date.Year(), int(date.Month()), date.Day(), 12.0)
}

// Position returns the geocentric ecliptic longitude and daily motion of a
// body at the given Julian day. Daily motion is a central difference over
// one day, so its sign matches apparent (retrograde) motion.
func (c *Calculator) Position(jd float64, body Body) (Position, error) {
	lon, err := c.longitudeAt(jd, body)
	if err != nil {
		return Position{}, err
	}
	before, err := c.longitudeAt(jd-0.5, body)
	if err != nil {
		return Position{}, err
	}
	after, err := c.longitudeAt(jd+0.5, body)
	if err != nil {
		return Position{}, err
	}
	return Position{
		Longitude:   lon,
		DailyMotion: signedDelta(after - before),
	}, nil
}

func (c *Calculator) longitudeAt(jd float64, body Body) (float64, error) {
	t := (jd - j2000) / 36525.0

	switch body {
	case BodySun:
		x, y, _ := helioRectangular(earthElements, t)
		// Geocentric Sun is the anti-direction of the heliocentric Earth.
		return NormalizeDegrees(math.Atan2(-y, -x) * degPerRad), nil
	case BodyMoon:
		return moonLongitude(t), nil
	case BodyNorthNode:
		return meanLunarNode(t), nil
	case BodyChiron:
		return chironLongitude(jd, t), nil
	default:
		el, ok := planetElements[body]
		if !ok {
			return 0, fmt.Errorf("no orbital elements for body %q", body)
		}
		px, py, _ := helioRectangular(el, t)
		ex, ey, _ := helioRectangular(earthElements, t)
		return NormalizeDegrees(math.Atan2(py-ey, px-ex) * degPerRad), nil
	}
}

// helioRectangular solves the Kepler orbit for the element set at time t
// (Julian centuries since J2000) and returns heliocentric ecliptic
// rectangular coordinates in au.
func helioRectangular(el orbitalElements, t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	inc := (el.i + el.iDot*t) * radPerDeg
	meanLon := el.l + el.lDot*t
	periLon := el.peri + el.periDot*t
	nodeLon := el.node + el.nodeDot*t

	m := NormalizeDegrees(meanLon-periLon) * radPerDeg
	argPeri := (periLon - nodeLon) * radPerDeg
	node := nodeLon * radPerDeg

	ecc := solveKepler(m, e)
	xOrb := a * (math.Cos(ecc) - e)
	yOrb := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	return rotateToEcliptic(xOrb, yOrb, argPeri, inc, node)
}

func rotateToEcliptic(xOrb, yOrb, argPeri, inc, node float64) (x, y, z float64) {
	cw, sw := math.Cos(argPeri), math.Sin(argPeri)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(inc), math.Sin(inc)

	x = (cw*cn-sw*sn*ci)*xOrb + (-sw*cn-cw*sn*ci)*yOrb
	y = (cw*sn+sw*cn*ci)*xOrb + (-sw*sn+cw*cn*ci)*yOrb
	z = sw*si*xOrb + cw*si*yOrb
	return x, y, z
}

// solveKepler iterates Newton's method for the eccentric anomaly.
// Converges in a handful of steps for every eccentricity in the tables.
func solveKepler(m, e float64) float64 {
	ecc := m
	if e > 0.8 {
		ecc = math.Pi
	}
	for i := 0; i < 12; i++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-9 {
			break
		}
	}
	return ecc
}

// moonLongitude evaluates a truncated lunar theory (principal solar and
// elliptic terms). Worst-case error stays well under a tenth of a degree,
// far inside a 30-degree sign band.
func moonLongitude(t float64) float64 {
	lp := 218.3164477 + 481267.88123421*t // mean longitude
	d := 297.8501921 + 445267.1114034*t   // mean elongation
	ms := 357.5291092 + 35999.0502909*t   // sun mean anomaly
	mm := 134.9633964 + 477198.8675055*t  // moon mean anomaly
	f := 93.2720950 + 483202.0175233*t    // argument of latitude

	sd := func(deg float64) float64 { return math.Sin(deg * radPerDeg) }

	lon := lp +
		6.288774*sd(mm) +
		1.274027*sd(2*d-mm) +
		0.658314*sd(2*d) +
		0.213618*sd(2*mm) -
		0.185116*sd(ms) -
		0.114332*sd(2*f) +
		0.058793*sd(2*d-2*mm) +
		0.057066*sd(2*d-ms-mm) +
		0.053322*sd(2*d+mm) +
		0.045758*sd(2*d-ms) -
		0.040923*sd(ms-mm) -
		0.034720*sd(d) -
		0.030383*sd(ms+mm)

	return NormalizeDegrees(lon)
}

// meanLunarNode is the mean ascending node of the lunar orbit. The node
// regresses, so its daily motion is always negative.
func meanLunarNode(t float64) float64 {
	node := 125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441.0
	return NormalizeDegrees(node)
}

func chironLongitude(jd, t float64) float64 {
	m := NormalizeDegrees(chironElements.m0+chironElements.n*(jd-j2000)) * radPerDeg
	ecc := solveKepler(m, chironElements.e)

	xOrb := chironElements.a * (math.Cos(ecc) - chironElements.e)
	yOrb := chironElements.a * math.Sqrt(1-chironElements.e*chironElements.e) * math.Sin(ecc)

	x, y, _ := rotateToEcliptic(
		xOrb, yOrb,
		chironElements.argPeri*radPerDeg,
		chironElements.i*radPerDeg,
		chironElements.node*radPerDeg,
	)

	ex, ey, _ := helioRectangular(earthElements, t)
	return NormalizeDegrees(math.Atan2(y-ey, x-ex) * degPerRad)
}

// signedDelta folds a longitude difference into [-180, 180) so motion across
// the 0/360 wrap keeps its sign.
func signedDelta(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d >= 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}
