package siddur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func weekdayContext() *FilterContext {
	return &FilterContext{
		Date:     time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		Weekday:  time.Wednesday,
		Locale:   LocaleDiaspora,
		Holidays: map[string]bool{},
		FastDays: map[string]bool{},
	}
}

func TestAppliesTriStateFlags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		spec Applicability
		ctx  func(*FilterContext)
		want bool
	}{
		{
			name: "empty spec always applies",
			spec: Applicability{},
			want: true,
		},
		{
			name: "shabbat required, weekday context",
			spec: Applicability{Shabbat: boolPtr(true)},
			want: false,
		},
		{
			name: "shabbat required, shabbat context",
			spec: Applicability{Shabbat: boolPtr(true)},
			ctx:  func(c *FilterContext) { c.IsShabbat = true },
			want: true,
		},
		{
			name: "shabbat excluded, shabbat context",
			spec: Applicability{Shabbat: boolPtr(false)},
			ctx:  func(c *FilterContext) { c.IsShabbat = true },
			want: false,
		},
		{
			name: "rosh chodesh required",
			spec: Applicability{RoshChodesh: boolPtr(true)},
			ctx:  func(c *FilterContext) { c.IsRoshChodesh = true },
			want: true,
		},
		{
			name: "omer required, not omer",
			spec: Applicability{Omer: boolPtr(true)},
			want: false,
		},
		{
			name: "motzaei shabbat required",
			spec: Applicability{MotzaeiShabbat: boolPtr(true)},
			ctx:  func(c *FilterContext) { c.IsMotzaeiShabbat = true },
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := weekdayContext()
			if tc.ctx != nil {
				tc.ctx(ctx)
			}
			assert.Equal(t, tc.want, Applies(tc.spec, ctx))
		})
	}
}

func TestAppliesSetDimensions(t *testing.T) {
	t.Parallel()

	spec := Applicability{Holidays: []string{"pesach"}}

	ctx := weekdayContext()
	assert.False(t, Applies(spec, ctx), "empty active set should not match a holiday requirement")

	ctx.Holidays["pesach"] = true
	assert.True(t, Applies(spec, ctx))

	// OR within the dimension: any listed holiday suffices.
	multi := Applicability{Holidays: []string{"sukkot", "pesach"}}
	assert.True(t, Applies(multi, ctx))

	fast := Applicability{FastDays: []string{"tzom_gedaliah"}}
	assert.False(t, Applies(fast, ctx))
	ctx.FastDays["tzom_gedaliah"] = true
	assert.True(t, Applies(fast, ctx))

	wd := Applicability{Weekdays: []string{"monday", "wednesday"}}
	assert.True(t, Applies(wd, ctx))
	wd = Applicability{Weekdays: []string{"monday"}}
	assert.False(t, Applies(wd, ctx))
}

func TestAppliesLocaleAndUserState(t *testing.T) {
	t.Parallel()

	ctx := weekdayContext()

	assert.True(t, Applies(Applicability{Locale: LocaleBoth}, ctx))
	assert.True(t, Applies(Applicability{Locale: LocaleDiaspora}, ctx))
	assert.False(t, Applies(Applicability{Locale: LocaleIsrael}, ctx))

	assert.False(t, Applies(Applicability{RequiresMinyan: true}, ctx))
	ctx.HasMinyan = true
	assert.True(t, Applies(Applicability{RequiresMinyan: true}, ctx))

	assert.False(t, Applies(Applicability{MournerOnly: true}, ctx))
	ctx.IsMourner = true
	assert.True(t, Applies(Applicability{MournerOnly: true}, ctx))
}

func TestAppliesIsConjunction(t *testing.T) {
	t.Parallel()

	spec := Applicability{
		Shabbat:  boolPtr(true),
		Holidays: []string{"pesach"},
	}

	ctx := weekdayContext()
	ctx.IsShabbat = true
	assert.False(t, Applies(spec, ctx), "one failing dimension fails the predicate")

	ctx.Holidays["pesach"] = true
	assert.True(t, Applies(spec, ctx))
}

func TestModeAllows(t *testing.T) {
	t.Parallel()

	assert.True(t, ModeAllows(ImportanceCore, ModeFull))
	assert.True(t, ModeAllows(ImportanceExtended, ModeFull))
	assert.True(t, ModeAllows(ImportanceCore, ModeBasic))
	assert.False(t, ModeAllows(ImportanceExtended, ModeBasic))
}

func TestEntryValidate(t *testing.T) {
	t.Parallel()

	good := Item{
		Entry: Entry{
			ID:         "ashrei",
			Title:      "Ashrei",
			Order:      1,
			Importance: ImportanceCore,
			Nusachim:   []Nusach{NusachAshkenaz},
		},
		BucketID: "pesukei",
	}
	assert.NoError(t, good.Validate())

	noID := good
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), ErrEntryIDEmpty)

	noTitle := good
	noTitle.Title = ""
	assert.ErrorIs(t, noTitle.Validate(), ErrEntryTitleEmpty)

	badTier := good
	badTier.Importance = "optional"
	assert.ErrorIs(t, badTier.Validate(), ErrInvalidImportance)

	badNusach := good
	badNusach.Nusachim = []Nusach{"italki"}
	assert.ErrorIs(t, badNusach.Validate(), ErrInvalidNusach)

	badLocale := good
	badLocale.Applicability.Locale = "galus"
	assert.ErrorIs(t, badLocale.Validate(), ErrInvalidLocale)
}
