// Package sky converts celestial sky positions into Earth-fixed detector
// frame angles.
package sky

import "math"

// Position is a sky location in equatorial coordinates, radians.
//
// Declination is physically meaningful in [-pi/2, pi/2]; the package does not
// validate it, matching the total-function contract of the transform.
type Position struct {
	RA  float64
	Dec float64
}

// ToDetectorAngles converts right ascension, declination, and Greenwich Mean
// Sidereal Time (all radians) into the zenith angle theta and azimuth phi of
// the Earth-fixed frame.
//
// The conventions phi = ra - gmst and theta = pi/2 - dec are shared with the
// downstream antenna-pattern formulas; their signs must not change.
func ToDetectorAngles(ra, dec, gmst float64) (theta, phi float64) {
	theta = math.Pi/2 - dec
	phi = ra - gmst
	return theta, phi
}

// DetectorAngles converts the position at the given sidereal time.
func (p Position) DetectorAngles(gmst float64) (theta, phi float64) {
	return ToDetectorAngles(p.RA, p.Dec, gmst)
}
