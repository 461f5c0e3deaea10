package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/luachapp/luach-api/internal/domain/hebcal"
	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

// dateParam reads the date query parameter as a civil YYYY-MM-DD value,
// defaulting to the current day when absent.
func dateParam(r *http.Request, now func() time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return now(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

// floatParam reads an optional float query parameter. A missing parameter
// returns (nil, nil).
func floatParam(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidCoordinate, name, raw)
	}
	return &v, nil
}

func boolParam(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// locationParams assembles a zmanim location from lat/lon/tz query
// parameters. Validation of ranges is left to the domain package; only
// parse failures are reported here.
func locationParams(r *http.Request) (zmanim.Location, error) {
	lat, err := floatParam(r, "lat")
	if err != nil {
		return zmanim.Location{}, err
	}
	lon, err := floatParam(r, "lon")
	if err != nil {
		return zmanim.Location{}, err
	}

	loc := zmanim.Location{Latitude: lat, Longitude: lon}
	if tz := r.URL.Query().Get("tz"); tz != "" {
		zone, err := time.LoadLocation(tz)
		if err != nil {
			return zmanim.Location{}, fmt.Errorf("%w: %q", ErrInvalidTimeZone, tz)
		}
		loc.Zone = zone
	}
	return loc, nil
}

// optionsParams assembles zmanim options from the optional tuning
// parameters, starting from the conventional defaults. Degrees and fixed
// minutes are mutually exclusive per twilight; minutes win if both appear.
func optionsParams(r *http.Request) (zmanim.Options, error) {
	opts := zmanim.DefaultOptions()

	if v, err := floatParam(r, "dawn_deg"); err != nil {
		return opts, err
	} else if v != nil {
		opts.Dawn = zmanim.Twilight{Kind: zmanim.TwilightDegrees, Value: *v}
	}
	if v, err := floatParam(r, "dawn_min"); err != nil {
		return opts, err
	} else if v != nil {
		opts.Dawn = zmanim.Twilight{Kind: zmanim.TwilightFixedMinutes, Value: *v}
	}
	if v, err := floatParam(r, "nightfall_deg"); err != nil {
		return opts, err
	} else if v != nil {
		opts.Nightfall = zmanim.Twilight{Kind: zmanim.TwilightDegrees, Value: *v}
	}
	if v, err := floatParam(r, "nightfall_min"); err != nil {
		return opts, err
	} else if v != nil {
		opts.Nightfall = zmanim.Twilight{Kind: zmanim.TwilightFixedMinutes, Value: *v}
	}
	if v, err := floatParam(r, "candle_min"); err != nil {
		return opts, err
	} else if v != nil {
		opts.CandleOffset = time.Duration(*v * float64(time.Minute))
	}

	switch r.URL.Query().Get("day_bounds") {
	case "", "gra":
	case "magen_avraham":
		opts.DayBounds = zmanim.BoundsMagenAvraham
	default:
		return opts, fmt.Errorf("%w: day_bounds=%q", ErrInvalidMode, r.URL.Query().Get("day_bounds"))
	}

	return opts, nil
}

func nusachParam(r *http.Request) (siddur.Nusach, error) {
	raw := r.URL.Query().Get("nusach")
	if raw == "" {
		return siddur.NusachAshkenaz, nil
	}
	n := siddur.Nusach(raw)
	if !siddur.ValidNusach(n) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNusach, raw)
	}
	return n, nil
}

func modeParam(r *http.Request) (siddur.Mode, error) {
	switch raw := r.URL.Query().Get("mode"); raw {
	case "", "full":
		return siddur.ModeFull, nil
	case "basic":
		return siddur.ModeBasic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
}

func localeParam(r *http.Request) (siddur.Locale, error) {
	switch raw := r.URL.Query().Get("locale"); raw {
	case "", "diaspora":
		return siddur.LocaleDiaspora, nil
	case "israel":
		return siddur.LocaleIsrael, nil
	default:
		return "", fmt.Errorf("%w: locale=%q", ErrInvalidMode, raw)
	}
}

// HebrewDateResponse is the payload for the hebrew-date endpoint.
type HebrewDateResponse struct {
	Date   string            `json:"date"`
	Hebrew hebcal.HebrewDate `json:"hebrew"`
}

// ParashaResponse is the payload for the parasha endpoint.
type ParashaResponse struct {
	Date    string `json:"date"`
	Parasha string `json:"parasha"`
}

// ZmanimResponse renders each instant as an RFC3339 string or null.
type ZmanimResponse struct {
	Date     string `json:"date"`
	Daylight string `json:"daylight"`

	Alos    *string `json:"alos"`
	Sunrise *string `json:"sunrise"`
	Sunset  *string `json:"sunset"`
	Tzes    *string `json:"tzes"`

	Chatzot                     *string `json:"chatzot"`
	SofZmanShemaGra             *string `json:"sof_zman_shema_gra"`
	SofZmanShemaMagenAvraham    *string `json:"sof_zman_shema_magen_avraham"`
	SofZmanTefillahGra          *string `json:"sof_zman_tefillah_gra"`
	SofZmanTefillahMagenAvraham *string `json:"sof_zman_tefillah_magen_avraham"`
	MinchaGedola                *string `json:"mincha_gedola"`
	MinchaKetana                *string `json:"mincha_ketana"`
	PlagHamincha                *string `json:"plag_hamincha"`
	CandleLighting              *string `json:"candle_lighting"`
}

func instantString(i zmanim.Instant) *string {
	if !i.Ok() {
		return nil
	}
	s := i.At.Format(time.RFC3339)
	return &s
}

func daylightString(d zmanim.Daylight) string {
	switch d {
	case zmanim.DaylightAlwaysAbove:
		return "always_above"
	case zmanim.DaylightAlwaysBelow:
		return "always_below"
	default:
		return "normal"
	}
}

// NewZmanimResponse flattens a computed result into the wire shape.
func NewZmanimResponse(date time.Time, res zmanim.Result) ZmanimResponse {
	return ZmanimResponse{
		Date:     date.Format("2006-01-02"),
		Daylight: daylightString(res.Daylight),

		Alos:    instantString(res.Alos),
		Sunrise: instantString(res.Sunrise),
		Sunset:  instantString(res.Sunset),
		Tzes:    instantString(res.Tzes),

		Chatzot:                     instantString(res.Chatzot),
		SofZmanShemaGra:             instantString(res.SofZmanShemaGra),
		SofZmanShemaMagenAvraham:    instantString(res.SofZmanShemaMagenAvraham),
		SofZmanTefillahGra:          instantString(res.SofZmanTefillahGra),
		SofZmanTefillahMagenAvraham: instantString(res.SofZmanTefillahMagenAvraham),
		MinchaGedola:                instantString(res.MinchaGedola),
		MinchaKetana:                instantString(res.MinchaKetana),
		PlagHamincha:                instantString(res.PlagHamincha),
		CandleLighting:              instantString(res.CandleLighting),
	}
}
