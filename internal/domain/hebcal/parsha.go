package hebcal

import "time"

// parshiot is the fixed 54-entry annual Torah reading cycle, starting from
// the Shabbat after Rosh Hashanah.
var parshiot = []string{
	"Bereshit", "Noach", "Lech-Lecha", "Vayera", "Chayei Sarah", "Toldot",
	"Vayetzei", "Vayishlach", "Vayeshev", "Miketz", "Vayigash", "Vayechi",
	"Shemot", "Vaera", "Bo", "Beshalach", "Yitro", "Mishpatim",
	"Terumah", "Tetzaveh", "Ki Tisa", "Vayakhel", "Pekudei",
	"Vayikra", "Tzav", "Shemini", "Tazria", "Metzora",
	"Acharei Mot", "Kedoshim", "Emor", "Behar", "Bechukotai",
	"Bamidbar", "Naso", "Beha'alotcha", "Sh'lach", "Korach",
	"Chukat", "Balak", "Pinchas", "Matot", "Masei",
	"Devarim", "Vaetchanan", "Eikev", "Re'eh", "Shoftim",
	"Ki Teitzei", "Ki Tavo", "Nitzavim", "Vayeilech",
	"Ha'azinu", "V'Zot HaBerachah",
}

// WeekdayParasha returns the name of the Torah portion for the Shabbat that
// contains or follows the given date, by counting whole weeks since the most
// recent Hebrew new year and indexing into the fixed 54-portion cycle.
//
// This is an approximation: it does not combine double portions in common
// years, account for festival readings that displace the cycle, or apply the
// one-week diaspora/Israel offset after late festival days. Treat the result
// as a label for display, not a ruling.
func WeekdayParasha(t time.Time) string {
	abs := AbsoluteFromGregorian(t)
	year := FromAbsolute(abs).Year
	rh := RoshHashanahAbsolute(year)

	weeks := (abs - rh) / 7
	return parshiot[mod(weeks, len(parshiot))]
}
