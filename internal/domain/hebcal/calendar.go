package hebcal

import (
	"errors"
	"time"
)

// Calendar-specific errors.
var (
	// ErrMonthOutOfRange is returned when a month number is outside 1..12
	// (1..13 in leap years).
	ErrMonthOutOfRange = errors.New("hebrew month out of range")
)

// epochOffset aligns the molad day count with the absolute day number:
// absolute(1 Tishrei of year y) = elapsedDays(y) + epochOffset.
const epochOffset = -1373428

// Month numbers, counted from Tishrei. In leap years Adar I and Adar II
// occupy positions 6 and 7 and the spring months shift down by one.
const (
	Tishrei  = 1
	Cheshvan = 2
	Kislev   = 3
	Tevet    = 4
	Shevat   = 5
	AdarI    = 6
)

var commonMonthNames = []string{
	"Tishrei", "Cheshvan", "Kislev", "Tevet", "Shevat", "Adar",
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

var leapMonthNames = []string{
	"Tishrei", "Cheshvan", "Kislev", "Tevet", "Shevat", "Adar I", "Adar II",
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

// HebrewDate is a date on the Hebrew calendar. Month numbering starts at
// Tishrei = 1; see MonthName for the human-readable form.
type HebrewDate struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	MonthName  string `json:"month_name"`
	Day        int    `json:"day"`
	IsLeapYear bool   `json:"is_leap_year"`
}

// IsLeapYear reports whether the given Hebrew year has thirteen months,
// per the 19-year Metonic cycle.
func IsLeapYear(year int) bool {
	return mod(7*year+1, 19) < 7
}

// MonthsInYear returns 13 for leap years and 12 otherwise.
func MonthsInYear(year int) int {
	if IsLeapYear(year) {
		return 13
	}
	return 12
}

// NisanMonth returns the month number of Nisan in the given year (7 in
// common years, 8 in leap years).
func NisanMonth(year int) int {
	if IsLeapYear(year) {
		return 8
	}
	return 7
}

// elapsedDays computes the number of days from the Hebrew epoch to Rosh
// Hashanah of the given year. The molad (mean lunar conjunction) of Tishrei
// is computed in days, hours, and 1/1080-hour parts, then the four deḥiyyot
// are applied in order. The order matters: the molad-based postponements
// can land Rosh Hashanah on a forbidden weekday, which the final rule then
// pushes off once more.
func elapsedDays(year int) int {
	monthsElapsed := monthsElapsed(year)

	partsElapsed := 204 + 793*mod(monthsElapsed, 1080)
	hoursElapsed := 5 + 12*monthsElapsed + 793*(monthsElapsed/1080) + partsElapsed/1080
	parts := mod(partsElapsed, 1080) + 1080*mod(hoursElapsed, 24)
	day := 1 + 29*monthsElapsed + hoursElapsed/24

	switch {
	case parts >= 19440:
		// Molad at or after midday: postpone.
		day++
	case mod(day, 7) == 2 && parts >= 9924 && !IsLeapYear(year):
		// Tuesday molad late in a common year would force an impossible
		// year length.
		day++
	case mod(day, 7) == 1 && parts >= 16789 && IsLeapYear(year-1):
		// Monday molad following a leap year.
		day++
	}

	if wd := mod(day, 7); wd == 0 || wd == 3 || wd == 5 {
		// Rosh Hashanah may not fall on Sunday, Wednesday, or Friday.
		day++
	}

	return day
}

// monthsElapsed returns the count of lunar months from the epoch to the
// start of the given Hebrew year.
func monthsElapsed(year int) int {
	cycles := (year - 1) / 19
	remainder := mod(year-1, 19)
	return 235*cycles + 12*remainder + (7*remainder+1)/19
}

// RoshHashanahAbsolute returns the absolute day number of 1 Tishrei of the
// given Hebrew year.
func RoshHashanahAbsolute(year int) int {
	return elapsedDays(year) + epochOffset
}

// DaysInYear returns the length of the given Hebrew year in days. The
// calendar admits exactly six year lengths: 353-355 for common years and
// 383-385 for leap years.
func DaysInYear(year int) int {
	return RoshHashanahAbsolute(year+1) - RoshHashanahAbsolute(year)
}

// yearType classifies the year by its final digit mod 10: 3 deficient,
// 5 complete, anything else regular.
func cheshvanLong(year int) bool {
	return mod(DaysInYear(year), 10) == 5
}

func kislevShort(year int) bool {
	return mod(DaysInYear(year), 10) == 3
}

// DaysInMonth returns the length (29 or 30) of the given month in the given
// Hebrew year. Cheshvan and Kislev vary with the year type; every other
// month has a fixed length.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > MonthsInYear(year) {
		return 0, ErrMonthOutOfRange
	}

	switch month {
	case Cheshvan:
		if cheshvanLong(year) {
			return 30, nil
		}
		return 29, nil
	case Kislev:
		if kislevShort(year) {
			return 29, nil
		}
		return 30, nil
	}

	if IsLeapYear(year) {
		// Tishrei 30, ..., Shevat 30, Adar I 30, Adar II 29, Nisan 30, ...
		switch month {
		case Tishrei, Shevat, AdarI, 8, 10, 12:
			return 30, nil
		default:
			return 29, nil
		}
	}

	switch month {
	case Tishrei, Shevat, 7, 9, 11:
		return 30, nil
	default:
		return 29, nil
	}
}

// Absolute converts the HebrewDate to its absolute day number.
func (d HebrewDate) Absolute() int {
	abs := RoshHashanahAbsolute(d.Year)
	for m := Tishrei; m < d.Month; m++ {
		n, _ := DaysInMonth(d.Year, m)
		abs += n
	}
	return abs + d.Day - 1
}

// Gregorian returns the Gregorian date (midnight UTC) for the HebrewDate.
func (d HebrewDate) Gregorian() time.Time {
	return GregorianFromAbsolute(d.Absolute())
}

// FromGregorian converts a Gregorian calendar date to its HebrewDate.
// Only the year, month, and day of t are considered; the time of day and
// zone are ignored, so callers who care about the halachic day boundary
// (nightfall) must adjust before calling.
func FromGregorian(t time.Time) HebrewDate {
	return FromAbsolute(AbsoluteFromGregorian(t))
}

// FromAbsolute converts an absolute day number to a HebrewDate. The year
// search starts from a coarse estimate and advances monotonically against
// RoshHashanahAbsolute, so it is bounded by construction.
func FromAbsolute(abs int) HebrewDate {
	// A Hebrew year is never shorter than 353 days; dividing by a full
	// Gregorian year undershoots, so the search only moves forward.
	year := (abs - epochOffset) / 366
	if year < 1 {
		year = 1
	}
	for RoshHashanahAbsolute(year+1) <= abs {
		year++
	}

	remaining := abs - RoshHashanahAbsolute(year)
	month := Tishrei
	for {
		n, _ := DaysInMonth(year, month)
		if remaining < n {
			break
		}
		remaining -= n
		month++
	}

	return HebrewDate{
		Year:       year,
		Month:      month,
		MonthName:  MonthName(year, month),
		Day:        remaining + 1,
		IsLeapYear: IsLeapYear(year),
	}
}

// MonthName returns the canonical English name of the given month in the
// given year ("Adar I"/"Adar II" in leap years, plain "Adar" otherwise).
func MonthName(year, month int) string {
	if month < 1 || month > MonthsInYear(year) {
		return ""
	}
	if IsLeapYear(year) {
		return leapMonthNames[month-1]
	}
	return commonMonthNames[month-1]
}

// AbsoluteFromGregorian converts a Gregorian date to its absolute day
// number (January 1 of year 1 = day 1).
func AbsoluteFromGregorian(t time.Time) int {
	y, m, d := t.Date()
	prior := y - 1
	abs := 365*prior + prior/4 - prior/100 + prior/400
	for mm := time.January; mm < m; mm++ {
		abs += gregorianMonthDays(y, mm)
	}
	return abs + d
}

// GregorianFromAbsolute converts an absolute day number back to a Gregorian
// date at midnight UTC.
func GregorianFromAbsolute(abs int) time.Time {
	// Coarse year estimate, then correct by direct comparison. The estimate
	// is within one year of the answer, so the loops run at most twice.
	year := abs / 366
	for AbsoluteFromGregorian(time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)) <= abs {
		year++
	}

	month := time.January
	for {
		n := gregorianMonthDays(year, month)
		first := AbsoluteFromGregorian(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
		if abs < first+n {
			return time.Date(year, month, abs-first+1, 0, 0, 0, 0, time.UTC)
		}
		month++
	}
}

func gregorianMonthDays(year int, month time.Month) int {
	switch month {
	case time.February:
		if isGregorianLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// mod is the arithmetic modulus (always non-negative for positive divisors).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
