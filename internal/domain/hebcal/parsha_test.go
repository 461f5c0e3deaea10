package hebcal

import (
	"testing"
	"time"
)

func TestWeekdayParashaCycle(t *testing.T) {
	t.Parallel()

	// The week containing Rosh Hashanah always lands on the first portion.
	rh := GregorianFromAbsolute(RoshHashanahAbsolute(5785))
	if got := WeekdayParasha(rh); got != "Bereshit" {
		t.Errorf("WeekdayParasha(Rosh Hashanah) = %q, want %q", got, "Bereshit")
	}

	// One week later the cycle advances exactly one portion.
	if got := WeekdayParasha(rh.AddDate(0, 0, 7)); got != "Noach" {
		t.Errorf("WeekdayParasha(+7d) = %q, want %q", got, "Noach")
	}

	// All days within the same week share a portion.
	for offset := 0; offset < 7; offset++ {
		if got := WeekdayParasha(rh.AddDate(0, 0, offset)); got != "Bereshit" {
			t.Errorf("day offset %d: got %q, want Bereshit", offset, got)
		}
	}
}

func TestParshiotListIsComplete(t *testing.T) {
	t.Parallel()

	if len(parshiot) != 54 {
		t.Fatalf("parashah cycle has %d entries, want 54", len(parshiot))
	}

	seen := make(map[string]bool, len(parshiot))
	for _, p := range parshiot {
		if seen[p] {
			t.Errorf("duplicate portion %q", p)
		}
		seen[p] = true
	}
}

func TestWeekdayParashaWrapsModuloCycle(t *testing.T) {
	t.Parallel()

	// 55 weeks past Rosh Hashanah wraps past the end of the list rather
	// than panicking, even though no real year reaches that far.
	rh := GregorianFromAbsolute(RoshHashanahAbsolute(5785))
	if got := WeekdayParasha(rh.Add(55 * 7 * 24 * time.Hour)); got == "" {
		t.Error("expected a portion name past the end of the cycle")
	}
}
