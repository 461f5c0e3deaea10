package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
	"github.com/luachapp/luach-api/internal/platform/hebcalapi"
	"github.com/luachapp/luach-api/internal/service/luach"
)

// Command flags shared by the subcommands. Location and preferences come
// from flags only; the CLI reads no ambient configuration.
var (
	flagDate string
	flagLat  float64
	flagLon  float64
	flagTz   string

	flagLocale  string
	flagNusach  string
	flagMode    string
	flagMinyan  bool
	flagMourner bool

	flagCandleMin    int
	flagMagenAvraham bool

	flagCatalogDir string
	flagOffline    bool
	flag24h        bool
)

var rootCmd = &cobra.Command{
	Use:   "luach",
	Short: "Hebrew calendar, zmanim, and siddur companion",
	Long: `luach prints the Hebrew date, halachic times, and the day's
applicable liturgy for a location. Times require --lat, --lon, and --tz.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDate, "date", "", "civil date as YYYY-MM-DD (default today)")
	pf.Float64Var(&flagLat, "lat", 0, "latitude in degrees, north positive")
	pf.Float64Var(&flagLon, "lon", 0, "longitude in degrees, east positive")
	pf.StringVar(&flagTz, "tz", "", "IANA time zone name")
	pf.StringVar(&flagLocale, "locale", "diaspora", "holiday scheme: diaspora or israel")
	pf.StringVar(&flagNusach, "nusach", "ashkenaz", "liturgical tradition")
	pf.StringVar(&flagMode, "mode", "full", "catalog mode: full or basic")
	pf.BoolVar(&flagMinyan, "minyan", false, "praying with a minyan")
	pf.BoolVar(&flagMourner, "mourner", false, "include mourner-only entries")
	pf.IntVar(&flagCandleMin, "candle-min", 18, "minutes before sunset for candle lighting")
	pf.BoolVar(&flagMagenAvraham, "magen-avraham", false, "scale proportional hours dawn to nightfall")
	pf.StringVar(&flagCatalogDir, "catalog", "data/catalog", "catalog directory")
	pf.BoolVar(&flagOffline, "offline", false, "skip the remote event source")
	pf.BoolVar(&flag24h, "24h", false, "24-hour time display")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(zmanimCmd)
	rootCmd.AddCommand(dateCmd)
}

// cliLogger keeps library warnings out of the rendered output.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// resolveZone loads the configured zone, or nil when none was given.
func resolveZone() (*time.Location, error) {
	if flagTz == "" {
		return nil, nil
	}
	zone, err := time.LoadLocation(flagTz)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q", flagTz)
	}
	return zone, nil
}

// resolveDate parses --date in the given zone, defaulting to now. A nil
// zone falls back to the system's local zone.
func resolveDate(zone *time.Location) (time.Time, error) {
	if zone == nil {
		zone = time.Local
	}
	if flagDate == "" {
		return time.Now().In(zone), nil
	}
	t, err := time.ParseInLocation("2006-01-02", flagDate, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flagDate)
	}
	// Noon keeps the civil date stable across the zone's offset.
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, zone), nil
}

// resolveLocation builds the zmanim location from flags. Coordinates are
// only considered set when their flags were passed explicitly; 0,0 is a
// legitimate coordinate.
func resolveLocation(cmd *cobra.Command, zone *time.Location) zmanim.Location {
	loc := zmanim.Location{Zone: zone}
	if cmd.Flags().Changed("lat") {
		lat := flagLat
		loc.Latitude = &lat
	}
	if cmd.Flags().Changed("lon") {
		lon := flagLon
		loc.Longitude = &lon
	}
	return loc
}

func resolveOptions() zmanim.Options {
	opts := zmanim.DefaultOptions()
	opts.CandleOffset = time.Duration(flagCandleMin) * time.Minute
	if flagMagenAvraham {
		opts.DayBounds = zmanim.BoundsMagenAvraham
	}
	return opts
}

func resolveLocale() (siddur.Locale, error) {
	switch flagLocale {
	case "diaspora":
		return siddur.LocaleDiaspora, nil
	case "israel":
		return siddur.LocaleIsrael, nil
	default:
		return "", fmt.Errorf("unknown locale %q, expected diaspora or israel", flagLocale)
	}
}

func resolveNusach() (siddur.Nusach, error) {
	n := siddur.Nusach(flagNusach)
	if !siddur.ValidNusach(n) {
		return "", fmt.Errorf("unknown nusach %q", flagNusach)
	}
	return n, nil
}

func resolveMode() (siddur.Mode, error) {
	switch flagMode {
	case "full":
		return siddur.ModeFull, nil
	case "basic":
		return siddur.ModeBasic, nil
	default:
		return "", fmt.Errorf("unknown mode %q, expected full or basic", flagMode)
	}
}

// newContextBuilder wires the event source per the offline flag.
func newContextBuilder() *luach.ContextBuilder {
	var source luach.EventSource
	if !flagOffline {
		source = hebcalapi.NewClient(hebcalapi.Config{
			Israel: flagLocale == "israel",
		}, cliLogger())
	}
	return luach.NewContextBuilder(source, luach.DefaultKeywordTable(), cliLogger())
}
