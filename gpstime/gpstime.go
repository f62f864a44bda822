// Package gpstime converts GPS timestamps to Greenwich Mean Sidereal Time.
//
// GPS time is a continuous atomic timescale starting 1980-01-06 00:00:00 UTC.
// Conversion to sidereal time first rewinds the accumulated leap seconds to
// recover UTC, then evaluates the IAU mean-sidereal-time polynomial at the
// Greenwich meridian (UT1 is approximated by UTC, which is accurate to under
// a second of time and standard practice for detector-frame geometry).
package gpstime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// Julian date of the GPS epoch, 1980-01-06 00:00:00 UTC.
	gpsEpochJD = 2444244.5

	// Julian date of the J2000.0 reference epoch.
	j2000JD = 2451545.0

	secondsPerDay = 86400.0
)

// GMSTFromGPS converts a GPS timestamp in seconds (fractional seconds
// allowed) to Greenwich Mean Sidereal Time in radians.
//
// The returned angle is continuous: it grows without bound as time advances
// and is never reduced modulo 2 pi. Callers feeding angle arithmetic reduce
// it themselves. Non-finite input fails with [ErrTimeFormat].
func GMSTFromGPS(gpsSeconds float64) (float64, error) {
	if math.IsNaN(gpsSeconds) || math.IsInf(gpsSeconds, 0) {
		return 0, fmt.Errorf("%w: non-finite GPS seconds: %v", ErrTimeFormat, gpsSeconds)
	}

	utcSeconds := gpsSeconds - leapSecondsBefore(gpsSeconds)
	jd := gpsEpochJD + utcSeconds/secondsPerDay

	// IAU 1982 mean sidereal time, Meeus expression in degrees.
	d := jd - j2000JD
	t := d / 36525.0
	gmstDeg := 280.46061837 +
		360.98564736629*d +
		0.000387933*t*t -
		t*t*t/38710000.0

	return gmstDeg * math.Pi / 180.0, nil
}

// Parse reads a GPS timestamp in seconds from its decimal text form.
// Unparseable input fails with [ErrTimeFormat].
func Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite GPS seconds: %q", ErrTimeFormat, s)
	}
	return v, nil
}
