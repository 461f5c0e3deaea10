// Package siddur defines the liturgical catalog model and the rule engine
// that decides which catalog entries apply on a given day.
package siddur

import (
	"errors"
	"fmt"
	"time"
)

// Catalog validation errors.
var (
	// ErrEntryIDEmpty is returned when a catalog entry has no id.
	ErrEntryIDEmpty = errors.New("catalog entry id cannot be empty")

	// ErrEntryTitleEmpty is returned when a catalog entry has no title.
	ErrEntryTitleEmpty = errors.New("catalog entry title cannot be empty")

	// ErrInvalidImportance is returned for an unknown importance tier.
	ErrInvalidImportance = errors.New("invalid importance tier")

	// ErrInvalidNusach is returned for an unknown liturgical tradition.
	ErrInvalidNusach = errors.New("invalid nusach")

	// ErrInvalidLocale is returned for an unknown diaspora/israel value.
	ErrInvalidLocale = errors.New("invalid locale")
)

// Nusach identifies a liturgical tradition.
type Nusach string

const (
	NusachAshkenaz      Nusach = "ashkenaz"
	NusachSefard        Nusach = "sefard"
	NusachEdotHamizrach Nusach = "edot_hamizrach"
)

// ValidNusach reports whether n is a known tradition.
func ValidNusach(n Nusach) bool {
	switch n {
	case NusachAshkenaz, NusachSefard, NusachEdotHamizrach:
		return true
	}
	return false
}

// Importance tiers a catalog entry for display modes.
type Importance string

const (
	ImportanceCore     Importance = "core"
	ImportanceExtended Importance = "extended"
)

// Mode selects how much of the catalog a view shows.
type Mode string

const (
	ModeFull  Mode = "full"
	ModeBasic Mode = "basic"
)

// Locale is the diaspora/israel discriminator. An empty value on an
// Applicability means "both".
type Locale string

const (
	LocaleBoth     Locale = "both"
	LocaleDiaspora Locale = "diaspora"
	LocaleIsrael   Locale = "israel"
)

// Applicability is the declarative predicate attached to a catalog entry.
// Nil tri-state flags and empty sets impose no constraint; an empty
// Holidays set means "any day", not "never".
type Applicability struct {
	Shabbat        *bool `yaml:"shabbat,omitempty"        json:"shabbat,omitempty"`
	RoshChodesh    *bool `yaml:"rosh_chodesh,omitempty"   json:"rosh_chodesh,omitempty"`
	Omer           *bool `yaml:"omer,omitempty"           json:"omer,omitempty"`
	MotzaeiShabbat *bool `yaml:"motzaei_shabbat,omitempty" json:"motzaei_shabbat,omitempty"`

	Holidays []string `yaml:"holidays,omitempty" json:"holidays,omitempty"`
	FastDays []string `yaml:"fast_days,omitempty" json:"fast_days,omitempty"`
	Weekdays []string `yaml:"weekdays,omitempty" json:"weekdays,omitempty"`

	Locale Locale `yaml:"locale,omitempty" json:"locale,omitempty"`

	RequiresMinyan bool `yaml:"requires_minyan,omitempty" json:"requires_minyan,omitempty"`
	MournerOnly    bool `yaml:"mourner_only,omitempty"    json:"mourner_only,omitempty"`
}

// FilterContext is one day's evaluated facts, built once and consumed by
// every applicability check for that day. It is never mutated after
// construction.
type FilterContext struct {
	Date    time.Time    `json:"date"`
	Weekday time.Weekday `json:"weekday"`

	IsShabbat        bool `json:"is_shabbat"`
	IsMotzaeiShabbat bool `json:"is_motzaei_shabbat"`
	IsRoshChodesh    bool `json:"is_rosh_chodesh"`

	IsOmer  bool `json:"is_omer"`
	OmerDay int  `json:"omer_day,omitempty"`

	Holidays map[string]bool `json:"holidays,omitempty"`
	FastDays map[string]bool `json:"fast_days,omitempty"`

	Locale    Locale `json:"locale"`
	HasMinyan bool   `json:"has_minyan"`
	IsMourner bool   `json:"is_mourner"`
}

// Entry is the common shape of all four catalog levels.
type Entry struct {
	ID            string        `yaml:"id"         json:"id"`
	Title         string        `yaml:"title"      json:"title"`
	Order         int           `yaml:"order"      json:"order"`
	Importance    Importance    `yaml:"importance" json:"importance"`
	Nusachim      []Nusach      `yaml:"nusach"     json:"nusach"`
	Applicability Applicability `yaml:"applicability" json:"applicability"`
}

// Validate checks the fields shared by every catalog level.
func (e Entry) Validate() error {
	if e.ID == "" {
		return ErrEntryIDEmpty
	}
	if e.Title == "" {
		return fmt.Errorf("entry %q: %w", e.ID, ErrEntryTitleEmpty)
	}
	switch e.Importance {
	case ImportanceCore, ImportanceExtended:
	default:
		return fmt.Errorf("entry %q: %w: %q", e.ID, ErrInvalidImportance, e.Importance)
	}
	for _, n := range e.Nusachim {
		if !ValidNusach(n) {
			return fmt.Errorf("entry %q: %w: %q", e.ID, ErrInvalidNusach, n)
		}
	}
	switch e.Applicability.Locale {
	case "", LocaleBoth, LocaleDiaspora, LocaleIsrael:
	default:
		return fmt.Errorf("entry %q: %w: %q", e.ID, ErrInvalidLocale, e.Applicability.Locale)
	}
	return nil
}

// Category is the top catalog level.
type Category struct {
	Entry `yaml:",inline"`
}

// Service groups buckets under a category.
type Service struct {
	Entry      `yaml:",inline"`
	CategoryID string `yaml:"category_id" json:"category_id"`
}

// Bucket is a structural container for items within a service.
type Bucket struct {
	Entry     `yaml:",inline"`
	ServiceID string `yaml:"service_id" json:"service_id"`
}

// Item is a leaf catalog entry. Items alone carry free-form tags
// (kaddish type, amidah section, and so on); tags are informational
// metadata and never affect applicability.
type Item struct {
	Entry    `yaml:",inline"`
	BucketID string            `yaml:"bucket_id" json:"bucket_id"`
	Tags     map[string]string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Catalog is the flat, author-supplied set of entries. Tree shape is fixed
// at authoring time; the engine only filters and regroups it.
type Catalog struct {
	Categories []Category
	Services   []Service
	Buckets    []Bucket
	Items      []Item
}
