package luach

import (
	"context"
	"log/slog"
	"time"

	"github.com/luachapp/luach-api/internal/domain/hebcal"
	"github.com/luachapp/luach-api/internal/domain/siddur"
)

// ContextBuilder derives a day's siddur.FilterContext. Weekday, Shabbat,
// and Rosh Chodesh facts are computed locally and always available; the
// holiday/fast/Omer dimensions come from the event source and degrade to
// empty on failure.
type ContextBuilder struct {
	source   EventSource
	keywords KeywordTable
	logger   *slog.Logger
}

// NewContextBuilder creates a ContextBuilder. source may be nil, in which
// case only locally derivable facts are populated (offline mode).
func NewContextBuilder(source EventSource, keywords KeywordTable, logger *slog.Logger) *ContextBuilder {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ContextBuilder")
	}
	return &ContextBuilder{
		source:   source,
		keywords: keywords,
		logger:   logger.With(slog.String("component", "context_builder")),
	}
}

// Build evaluates the facts for one date. It never fails: an event-source
// error is logged and absorbed, leaving the holiday/fast sets empty and the
// Omer facts to the local fallback.
func (b *ContextBuilder) Build(
	ctx context.Context,
	date time.Time,
	locale siddur.Locale,
	hasMinyan, isMourner bool,
) *siddur.FilterContext {
	weekday := date.Weekday()

	fc := &siddur.FilterContext{
		Date:    date,
		Weekday: weekday,
		// The civil Saturday covers both the day and its exit; catalog
		// entries distinguish the two via the motzaei_shabbat flag.
		IsShabbat:        weekday == time.Saturday,
		IsMotzaeiShabbat: weekday == time.Saturday,
		IsRoshChodesh:    isRoshChodesh(date),
		Holidays:         map[string]bool{},
		FastDays:         map[string]bool{},
		Locale:           locale,
		HasMinyan:        hasMinyan,
		IsMourner:        isMourner,
	}

	if b.source != nil {
		events, err := b.source.Events(ctx, date, date)
		if err != nil {
			b.logger.Warn("event source unavailable, using local facts only",
				slog.String("date", date.Format("2006-01-02")),
				slog.String("error", err.Error()))
		} else {
			b.applyEvents(fc, events)
		}
	}

	if !fc.IsOmer {
		if day, ok := omerDayFallback(date); ok {
			fc.IsOmer = true
			fc.OmerDay = day
		}
	}

	return fc
}

// applyEvents pattern-matches event titles against the keyword table.
// First match wins per dimension for any single title.
func (b *ContextBuilder) applyEvents(fc *siddur.FilterContext, events []Event) {
	for _, ev := range events {
		if key, ok := matchKey(b.keywords.Holidays, ev.Title); ok {
			fc.Holidays[key] = true
		}
		if key, ok := matchKey(b.keywords.FastDays, ev.Title); ok {
			fc.FastDays[key] = true
		}
		if day := omerDayFromTitle(ev.Title); day > 0 {
			fc.IsOmer = true
			fc.OmerDay = day
		}
	}
}

// isRoshChodesh reports whether the date is the first day of a Hebrew
// month, or day thirty of a thirty-day month (the first day of a two-day
// Rosh Chodesh spanning the month boundary).
func isRoshChodesh(date time.Time) bool {
	hd := hebcal.FromGregorian(date)
	if hd.Day == 1 {
		return true
	}
	if hd.Day != 30 {
		return false
	}
	n, err := hebcal.DaysInMonth(hd.Year, hd.Month)
	return err == nil && n == 30
}

// omerDayFallback computes the Omer count directly: days elapsed since
// 16 Nisan of the current Hebrew year, day 1 inclusive through day 49.
// The cutover is civil midnight, matching the event-feed convention.
func omerDayFallback(date time.Time) (int, bool) {
	hd := hebcal.FromGregorian(date)
	start := hebcal.HebrewDate{
		Year:  hd.Year,
		Month: hebcal.NisanMonth(hd.Year),
		Day:   16,
	}
	day := hebcal.AbsoluteFromGregorian(date) - start.Absolute() + 1
	if day < 1 || day > 49 {
		return 0, false
	}
	return day, true
}
