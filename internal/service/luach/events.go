// Package luach assembles the day's evaluated facts (the filter context)
// and the combined "today" view from the calendar converter, the zmanim
// engine, and an external calendar-event feed.
package luach

import (
	"context"
	"strings"
	"time"
)

// Event is one descriptor from the external calendar-event source.
type Event struct {
	Date     time.Time
	Title    string
	Category string
}

// EventSource supplies holiday/fast/Omer events for a date range. The
// query must resolve before context construction; nothing in this package
// retries or times out beyond what ctx carries.
type EventSource interface {
	Events(ctx context.Context, start, end time.Time) ([]Event, error)
}

// EventSourceFunc adapts a function to the EventSource interface.
type EventSourceFunc func(ctx context.Context, start, end time.Time) ([]Event, error)

// Events implements EventSource.
func (f EventSourceFunc) Events(ctx context.Context, start, end time.Time) ([]Event, error) {
	return f(ctx, start, end)
}

// keywordRule maps a case-insensitive substring of an event title to a
// catalog key. First match wins within a dimension.
type keywordRule struct {
	match string
	key   string
}

// KeywordTable drives event-title matching. It is plain data so that a
// deployment can extend or replace it without touching evaluation logic.
type KeywordTable struct {
	Holidays []keywordRule
	FastDays []keywordRule
}

// DefaultKeywordTable matches the title conventions of the Hebcal feed.
// Fast days are listed before holidays are consulted for the same title,
// so Yom Kippur lands in both dimensions by design of the two tables.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		Holidays: []keywordRule{
			{match: "rosh hashana", key: "rosh_hashanah"},
			{match: "yom kippur", key: "yom_kippur"},
			{match: "sukkot", key: "sukkot"},
			{match: "shmini atzeret", key: "shmini_atzeret"},
			{match: "simchat torah", key: "simchat_torah"},
			{match: "chanukah", key: "chanukah"},
			{match: "tu bishvat", key: "tu_bishvat"},
			{match: "shushan purim", key: "shushan_purim"},
			{match: "purim", key: "purim"},
			{match: "pesach sheni", key: "pesach_sheni"},
			{match: "pesach", key: "pesach"},
			{match: "lag baomer", key: "lag_baomer"},
			{match: "shavuot", key: "shavuot"},
			{match: "tu b'av", key: "tu_bav"},
			{match: "rosh chodesh", key: "rosh_chodesh"},
		},
		FastDays: []keywordRule{
			{match: "tzom gedaliah", key: "tzom_gedaliah"},
			{match: "yom kippur", key: "yom_kippur"},
			{match: "asara b'tevet", key: "asara_btevet"},
			{match: "ta'anit esther", key: "taanit_esther"},
			{match: "ta'anit bechorot", key: "taanit_bechorot"},
			{match: "tzom tammuz", key: "tzom_tammuz"},
			{match: "tish'a b'av", key: "tisha_bav"},
			{match: "tisha b'av", key: "tisha_bav"},
		},
	}
}

// matchKey returns the first rule whose substring occurs in the title.
func matchKey(rules []keywordRule, title string) (string, bool) {
	lower := strings.ToLower(title)
	for _, r := range rules {
		if strings.Contains(lower, r.match) {
			return r.key, true
		}
	}
	return "", false
}

// omerDayFromTitle extracts the counting day from titles like
// "33rd day of the Omer". Returns 0 when the title is not an Omer count.
func omerDayFromTitle(title string) int {
	lower := strings.ToLower(title)
	if !strings.Contains(lower, "omer") {
		return 0
	}
	n := 0
	seen := false
	for _, r := range lower {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	if !seen || n < 1 || n > 49 {
		return 0
	}
	return n
}
