// Package zmanim computes solar event times and the halachic time points
// derived from them for a single calendar day at a single location.
//
// The solar position math is the standard J2000-referenced approximation
// (mean anomaly, equation of center, equation of time, declination, hour
// angle). Accuracy is on the order of a minute or two, which is the usual
// tolerance for published zmanim tables.
package zmanim

import "math"

// standardAltitude is the solar altitude for civil sunrise/sunset: the sun's
// upper limb on the horizon, corrected for atmospheric refraction.
const standardAltitude = -0.833

const (
	j2000       = 2451545.0
	obliquity   = 23.4397 // mean obliquity of the ecliptic, degrees
	unixEpochJD = 2440587.5
)

// solarDay holds the intermediate solar quantities for one date/longitude.
type solarDay struct {
	transit     float64 // julian date of local solar noon
	declination float64 // radians
}

// julianDayNumber converts a Gregorian calendar date to its Julian day
// number (the integer JDN of the date's noon).
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// computeSolarDay evaluates the solar transit and declination for the given
// date at the given longitude (degrees, east positive).
func computeSolarDay(year, month, day int, longitude float64) solarDay {
	n := float64(julianDayNumber(year, month, day)) - j2000 + 0.0008

	// Mean solar time at the observer's meridian.
	meanSolarTime := n - longitude/360

	// Solar mean anomaly.
	meanAnomaly := math.Mod(357.5291+0.98560028*meanSolarTime, 360)
	mRad := radians(meanAnomaly)

	// Equation of the center.
	center := 1.9148*math.Sin(mRad) + 0.0200*math.Sin(2*mRad) + 0.0003*math.Sin(3*mRad)

	// Ecliptic longitude (argument of perihelion 102.9372).
	eclipticLongitude := math.Mod(meanAnomaly+center+180+102.9372, 360)
	lRad := radians(eclipticLongitude)

	// Solar transit, corrected for the equation of time.
	transit := j2000 + meanSolarTime + 0.0053*math.Sin(mRad) - 0.0069*math.Sin(2*lRad)

	declination := math.Asin(math.Sin(lRad) * math.Sin(radians(obliquity)))

	return solarDay{transit: transit, declination: declination}
}

// hourAngleResult distinguishes the normal case from the two polar
// degeneracies.
type hourAngleResult int

const (
	hourAngleNormal hourAngleResult = iota
	hourAngleAlwaysAbove
	hourAngleAlwaysBelow
)

// hourAngle computes the solar hour angle (in fractions of a day) at which
// the sun reaches the given altitude (degrees) for an observer at the given
// latitude. The cosine ratio is clamped: beyond ±1 the sun never crosses
// that altitude on this date.
func (s solarDay) hourAngle(latitude, altitude float64) (float64, hourAngleResult) {
	latRad := radians(latitude)

	cosH := (math.Sin(radians(altitude)) - math.Sin(latRad)*math.Sin(s.declination)) /
		(math.Cos(latRad) * math.Cos(s.declination))

	switch {
	case cosH <= -1:
		return 0, hourAngleAlwaysAbove
	case cosH >= 1:
		return 0, hourAngleAlwaysBelow
	}

	return degrees(math.Acos(cosH)) / 360, hourAngleNormal
}

// crossings returns the julian dates at which the sun descends to and
// ascends from the given altitude (i.e. "sunrise" and "sunset" at that
// altitude).
func (s solarDay) crossings(latitude, altitude float64) (rise, set float64, res hourAngleResult) {
	h, res := s.hourAngle(latitude, altitude)
	if res != hourAngleNormal {
		return 0, 0, res
	}
	return s.transit - h, s.transit + h, hourAngleNormal
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
