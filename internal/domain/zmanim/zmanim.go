package zmanim

import (
	"errors"
	"time"
)

// Input validation errors.
var (
	// ErrNoLocation is returned when latitude or longitude is missing.
	// The engine never guesses a default location.
	ErrNoLocation = errors.New("location is not configured")

	// ErrLatitudeOutOfRange is returned for latitudes outside [-90, 90].
	ErrLatitudeOutOfRange = errors.New("latitude out of range")

	// ErrLongitudeOutOfRange is returned for longitudes outside [-180, 180].
	ErrLongitudeOutOfRange = errors.New("longitude out of range")

	// ErrNoTimeZone is returned when the location has no time zone.
	ErrNoTimeZone = errors.New("time zone is not configured")
)

// Location is an immutable geographic input for one computation.
// Latitude and Longitude are pointers so that an unconfigured location is
// distinguishable from coordinates that happen to be zero.
type Location struct {
	Latitude  *float64
	Longitude *float64
	Zone      *time.Location
}

// Validate checks the location's coordinates and zone.
func (l Location) Validate() error {
	if l.Latitude == nil || l.Longitude == nil {
		return ErrNoLocation
	}
	if *l.Latitude < -90 || *l.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if *l.Longitude < -180 || *l.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}
	if l.Zone == nil {
		return ErrNoTimeZone
	}
	return nil
}

// TwilightKind selects how dawn or nightfall is derived.
type TwilightKind int

const (
	// TwilightDegrees derives the twilight point from a solar depression
	// angle (a second hour-angle computation at a more negative altitude).
	TwilightDegrees TwilightKind = iota

	// TwilightFixedMinutes derives the twilight point as a fixed offset
	// from sunrise or sunset.
	TwilightFixedMinutes
)

// Twilight is a tagged choice of twilight convention. For TwilightDegrees,
// Value is the depression angle in degrees below the horizon (positive).
// For TwilightFixedMinutes, Value is the offset in minutes.
type Twilight struct {
	Kind  TwilightKind
	Value float64
}

// DayBounds selects which "halachic day" scales the proportional hours.
type DayBounds int

const (
	// BoundsGra bounds the day sunrise to sunset.
	BoundsGra DayBounds = iota

	// BoundsMagenAvraham bounds the day dawn to nightfall.
	BoundsMagenAvraham
)

// Options parameterizes one day's computation. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	Dawn          Twilight
	Nightfall     Twilight
	CandleOffset  time.Duration
	DayBounds     DayBounds
}

// DefaultOptions returns the conventional defaults: dawn at 16.1 degrees,
// nightfall at 8.5 degrees, candle lighting 18 minutes before sunset,
// proportional hours per the Gra.
func DefaultOptions() Options {
	return Options{
		Dawn:         Twilight{Kind: TwilightDegrees, Value: 16.1},
		Nightfall:    Twilight{Kind: TwilightDegrees, Value: 8.5},
		CandleOffset: 18 * time.Minute,
		DayBounds:    BoundsGra,
	}
}

// Status describes one computed instant. The zero value is StatusPending so
// that an untouched field is distinguishable from one that was computed and
// found unavailable.
type Status int

const (
	// StatusPending means the value has not been computed.
	StatusPending Status = iota

	// StatusValid means At holds a concrete instant.
	StatusValid

	// StatusUnavailable means the instant does not exist for this
	// date/location (polar day or night), or depends on one that doesn't.
	StatusUnavailable
)

// Instant is a point in time that may be unavailable.
type Instant struct {
	Status Status    `json:"status"`
	At     time.Time `json:"at,omitempty"`
}

// Ok reports whether the instant holds a concrete time.
func (i Instant) Ok() bool { return i.Status == StatusValid }

func valid(t time.Time) Instant { return Instant{Status: StatusValid, At: t} }

func unavailable() Instant { return Instant{Status: StatusUnavailable} }

// Daylight describes the day's gross solar behavior at the standard
// sunrise/sunset altitude.
type Daylight int

const (
	// DaylightNormal means the sun rises and sets.
	DaylightNormal Daylight = iota

	// DaylightAlwaysAbove means the sun never descends to the standard
	// altitude (polar day).
	DaylightAlwaysAbove

	// DaylightAlwaysBelow means the sun never reaches the standard
	// altitude (polar night).
	DaylightAlwaysBelow
)

// Result is the record of named instants for one day at one location.
type Result struct {
	Daylight Daylight `json:"daylight"`

	Alos    Instant `json:"alos"`
	Sunrise Instant `json:"sunrise"`
	Sunset  Instant `json:"sunset"`
	Tzes    Instant `json:"tzes"`

	Chatzot                     Instant `json:"chatzot"`
	SofZmanShemaGra             Instant `json:"sof_zman_shema_gra"`
	SofZmanShemaMagenAvraham    Instant `json:"sof_zman_shema_magen_avraham"`
	SofZmanTefillahGra          Instant `json:"sof_zman_tefillah_gra"`
	SofZmanTefillahMagenAvraham Instant `json:"sof_zman_tefillah_magen_avraham"`
	MinchaGedola                Instant `json:"mincha_gedola"`
	MinchaKetana                Instant `json:"mincha_ketana"`
	PlagHamincha                Instant `json:"plag_hamincha"`
	CandleLighting              Instant `json:"candle_lighting"`
}

// Compute calculates the day's solar events and halachic times for the
// calendar date of t interpreted in the location's zone. It returns an
// error only for invalid input; astronomical degeneracies are reported
// through the Daylight field with the dependent instants unavailable.
func Compute(t time.Time, loc Location, opts Options) (Result, error) {
	if err := loc.Validate(); err != nil {
		return Result{}, err
	}

	local := t.In(loc.Zone)
	year, month, day := local.Date()

	lat := *loc.Latitude
	sd := computeSolarDay(year, int(month), day, *loc.Longitude)

	riseJD, setJD, res := sd.crossings(lat, standardAltitude)
	if res != hourAngleNormal {
		r := Result{Daylight: DaylightAlwaysBelow}
		if res == hourAngleAlwaysAbove {
			r.Daylight = DaylightAlwaysAbove
		}
		// Every named time is derived from sunrise/sunset; none are
		// meaningful on a degenerate day.
		r.Alos = unavailable()
		r.Sunrise = unavailable()
		r.Sunset = unavailable()
		r.Tzes = unavailable()
		r.Chatzot = unavailable()
		r.SofZmanShemaGra = unavailable()
		r.SofZmanShemaMagenAvraham = unavailable()
		r.SofZmanTefillahGra = unavailable()
		r.SofZmanTefillahMagenAvraham = unavailable()
		r.MinchaGedola = unavailable()
		r.MinchaKetana = unavailable()
		r.PlagHamincha = unavailable()
		r.CandleLighting = unavailable()
		return r, nil
	}

	sunrise := jdToTime(riseJD, loc.Zone)
	sunset := jdToTime(setJD, loc.Zone)

	result := Result{
		Daylight: DaylightNormal,
		Sunrise:  valid(sunrise),
		Sunset:   valid(sunset),
	}

	result.Alos = twilightInstant(sd, lat, loc.Zone, opts.Dawn, sunrise, true)
	result.Tzes = twilightInstant(sd, lat, loc.Zone, opts.Nightfall, sunset, false)

	result.CandleLighting = valid(sunset.Add(-opts.CandleOffset))

	// Proportional hours under the Gra: sunrise to sunset.
	graHours := proportionalClock{start: result.Sunrise, end: result.Sunset}
	// Under the Magen Avraham: dawn to nightfall.
	maHours := proportionalClock{start: result.Alos, end: result.Tzes}

	result.SofZmanShemaGra = graHours.at(3)
	result.SofZmanTefillahGra = graHours.at(4)
	result.SofZmanShemaMagenAvraham = maHours.at(3)
	result.SofZmanTefillahMagenAvraham = maHours.at(4)

	chosen := graHours
	if opts.DayBounds == BoundsMagenAvraham {
		chosen = maHours
	}
	result.Chatzot = chosen.at(6)
	result.MinchaGedola = chosen.at(6.5)
	result.MinchaKetana = chosen.at(9.5)
	result.PlagHamincha = chosen.at(10.75)

	return result, nil
}

// twilightInstant resolves one twilight preference. The fixed-minute path
// never fails; the degrees path can hit its own degeneracy at high
// latitudes even when the sun does rise and set.
func twilightInstant(
	sd solarDay,
	latitude float64,
	zone *time.Location,
	pref Twilight,
	anchor time.Time,
	before bool,
) Instant {
	if pref.Kind == TwilightFixedMinutes {
		offset := time.Duration(pref.Value * float64(time.Minute))
		if before {
			return valid(anchor.Add(-offset))
		}
		return valid(anchor.Add(offset))
	}

	riseJD, setJD, res := sd.crossings(latitude, -pref.Value)
	if res != hourAngleNormal {
		return unavailable()
	}
	if before {
		return valid(jdToTime(riseJD, zone))
	}
	return valid(jdToTime(setJD, zone))
}

// proportionalClock divides the span between two instants into twelve
// halachic hours.
type proportionalClock struct {
	start Instant
	end   Instant
}

// at returns the instant the given number of halachic hours after the start
// of the day, or unavailable if either bound is.
func (c proportionalClock) at(hours float64) Instant {
	if !c.start.Ok() || !c.end.Ok() {
		return unavailable()
	}
	hour := c.end.At.Sub(c.start.At) / 12
	return valid(c.start.At.Add(time.Duration(hours * float64(hour))))
}

// jdToTime converts a julian date to wall-clock time in the given zone,
// truncated to the second.
func jdToTime(jd float64, zone *time.Location) time.Time {
	seconds := (jd - unixEpochJD) * 86400
	return time.Unix(int64(seconds), 0).In(zone)
}
