package luach

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachapp/luach-api/internal/domain/siddur"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func staticSource(events []Event) EventSource {
	return EventSourceFunc(func(ctx context.Context, start, end time.Time) ([]Event, error) {
		return events, nil
	})
}

func failingSource() EventSource {
	return EventSourceFunc(func(ctx context.Context, start, end time.Time) ([]Event, error) {
		return nil, errors.New("feed unreachable")
	})
}

func TestBuildLocalFacts(t *testing.T) {
	t.Parallel()

	b := NewContextBuilder(nil, DefaultKeywordTable(), discardLogger())

	// A plain Wednesday.
	fc := b.Build(context.Background(), time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		siddur.LocaleDiaspora, true, false)
	assert.Equal(t, time.Wednesday, fc.Weekday)
	assert.False(t, fc.IsShabbat)
	assert.False(t, fc.IsMotzaeiShabbat)
	assert.True(t, fc.HasMinyan)
	assert.False(t, fc.IsMourner)
	assert.Equal(t, siddur.LocaleDiaspora, fc.Locale)

	// A Saturday is Shabbat and its own exit.
	sat := b.Build(context.Background(), time.Date(2024, time.April, 13, 0, 0, 0, 0, time.UTC),
		siddur.LocaleDiaspora, false, false)
	assert.True(t, sat.IsShabbat)
	assert.True(t, sat.IsMotzaeiShabbat)
}

func TestBuildRoshChodesh(t *testing.T) {
	t.Parallel()

	b := NewContextBuilder(nil, DefaultKeywordTable(), discardLogger())

	testCases := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			// 1 Nisan 5784 = 2024-04-09.
			name: "first of the month",
			date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			// 30 Nisan 5784 = 2024-05-08 (Nisan always has 30 days).
			name: "day thirty of a thirty-day month",
			date: time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "mid-month",
			date: time.Date(2024, time.April, 23, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fc := b.Build(context.Background(), tc.date, siddur.LocaleDiaspora, false, false)
			assert.Equal(t, tc.want, fc.IsRoshChodesh)
		})
	}
}

func TestBuildAppliesEventKeywords(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.April, 23, 0, 0, 0, 0, time.UTC)
	source := staticSource([]Event{
		{Date: date, Title: "Pesach I", Category: "holiday"},
		{Date: date, Title: "1st day of the Omer", Category: "omer"},
	})

	b := NewContextBuilder(source, DefaultKeywordTable(), discardLogger())
	fc := b.Build(context.Background(), date, siddur.LocaleDiaspora, false, false)

	assert.True(t, fc.Holidays["pesach"])
	assert.True(t, fc.IsOmer)
	assert.Equal(t, 1, fc.OmerDay)
	assert.Empty(t, fc.FastDays)
}

func TestBuildFastDayKeywords(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.September, 29, 0, 0, 0, 0, time.UTC)
	source := staticSource([]Event{
		{Date: date, Title: "Tzom Gedaliah", Category: "fast"},
	})

	b := NewContextBuilder(source, DefaultKeywordTable(), discardLogger())
	fc := b.Build(context.Background(), date, siddur.LocaleDiaspora, false, false)

	assert.True(t, fc.FastDays["tzom_gedaliah"])
	assert.Empty(t, fc.Holidays)
}

func TestBuildYomKippurIsHolidayAndFast(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.October, 12, 0, 0, 0, 0, time.UTC)
	source := staticSource([]Event{{Date: date, Title: "Yom Kippur", Category: "holiday"}})

	b := NewContextBuilder(source, DefaultKeywordTable(), discardLogger())
	fc := b.Build(context.Background(), date, siddur.LocaleDiaspora, false, false)

	assert.True(t, fc.Holidays["yom_kippur"])
	assert.True(t, fc.FastDays["yom_kippur"])
}

func TestBuildDegradesOnSourceFailure(t *testing.T) {
	t.Parallel()

	// Shabbat during Pesach: local facts survive, feed facts are lost.
	date := time.Date(2024, time.April, 27, 0, 0, 0, 0, time.UTC)
	b := NewContextBuilder(failingSource(), DefaultKeywordTable(), discardLogger())

	fc := b.Build(context.Background(), date, siddur.LocaleIsrael, true, false)

	assert.True(t, fc.IsShabbat, "locally derivable facts must survive")
	assert.Empty(t, fc.Holidays)
	assert.Empty(t, fc.FastDays)
	// The Omer fallback is local arithmetic, so it survives too.
	assert.True(t, fc.IsOmer)
	assert.Equal(t, 4, fc.OmerDay)
}

func TestOmerDayFallback(t *testing.T) {
	t.Parallel()

	// 16 Nisan 5784 = 2024-04-24 is day 1.
	testCases := []struct {
		name string
		date time.Time
		day  int
		ok   bool
	}{
		{"day before the count", time.Date(2024, time.April, 23, 0, 0, 0, 0, time.UTC), 0, false},
		{"first day", time.Date(2024, time.April, 24, 0, 0, 0, 0, time.UTC), 1, true},
		{"lag baomer", time.Date(2024, time.May, 26, 0, 0, 0, 0, time.UTC), 33, true},
		{"final day", time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC), 49, true},
		{"shavuot is past the count", time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, ok := omerDayFallback(tc.date)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.day, day)
		})
	}
}

func TestOmerDayFromTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 33, omerDayFromTitle("33rd day of the Omer"))
	assert.Equal(t, 1, omerDayFromTitle("1st day of the Omer"))
	assert.Equal(t, 0, omerDayFromTitle("Lag BaOmer"))
	assert.Equal(t, 0, omerDayFromTitle("Pesach I"))
	assert.Equal(t, 0, omerDayFromTitle("50th day of the Omer"))
}

func TestKeywordMatchingIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	table := DefaultKeywordTable()

	key, ok := matchKey(table.Holidays, "PESACH VII")
	require.True(t, ok)
	assert.Equal(t, "pesach", key)

	key, ok = matchKey(table.Holidays, "Chanukah: 3 Candles")
	require.True(t, ok)
	assert.Equal(t, "chanukah", key)

	_, ok = matchKey(table.Holidays, "Shabbat Mevarchim")
	assert.False(t, ok)
}
