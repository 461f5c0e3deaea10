package siddur

import (
	"strings"
	"time"
)

// Applies evaluates the entry predicate against the day's context. The
// result is the conjunction of every dimension; a dimension left unset or
// empty always passes. Free-form item tags are deliberately not consulted.
func Applies(spec Applicability, ctx *FilterContext) bool {
	if !triState(spec.Shabbat, ctx.IsShabbat) {
		return false
	}
	if !triState(spec.RoshChodesh, ctx.IsRoshChodesh) {
		return false
	}
	if !triState(spec.Omer, ctx.IsOmer) {
		return false
	}
	if !triState(spec.MotzaeiShabbat, ctx.IsMotzaeiShabbat) {
		return false
	}

	if !intersects(spec.Holidays, ctx.Holidays) {
		return false
	}
	if !intersects(spec.FastDays, ctx.FastDays) {
		return false
	}
	if !weekdayMatches(spec.Weekdays, ctx.Weekday) {
		return false
	}

	switch spec.Locale {
	case "", LocaleBoth:
	default:
		if spec.Locale != ctx.Locale {
			return false
		}
	}

	if spec.RequiresMinyan && !ctx.HasMinyan {
		return false
	}
	if spec.MournerOnly && !ctx.IsMourner {
		return false
	}

	return true
}

// ModeAllows reports whether an entry of the given importance is shown in
// the given display mode. Basic mode shows only core entries.
func ModeAllows(importance Importance, mode Mode) bool {
	if mode == ModeBasic {
		return importance == ImportanceCore
	}
	return true
}

// triState: nil imposes no constraint; otherwise the context flag must
// match exactly.
func triState(want *bool, got bool) bool {
	return want == nil || *want == got
}

// intersects: an empty requirement set passes; a non-empty set requires at
// least one member to be active (OR within the dimension).
func intersects(want []string, active map[string]bool) bool {
	if len(want) == 0 {
		return true
	}
	for _, key := range want {
		if active[key] {
			return true
		}
	}
	return false
}

// weekdayMatches compares lowercase weekday names ("sunday".."saturday").
func weekdayMatches(want []string, day time.Weekday) bool {
	if len(want) == 0 {
		return true
	}
	name := strings.ToLower(day.String())
	for _, w := range want {
		if strings.ToLower(w) == name {
			return true
		}
	}
	return false
}
