package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/luachapp/luach-api/internal/domain/hebcal"
	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

// unavailableTime is rendered for instants that do not exist at this
// date and location.
const unavailableTime = "--:--"

var (
	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

// formatInstant renders an instant as a clock time, or the placeholder
// when the instant is unavailable.
func formatInstant(i zmanim.Instant, use24h bool) string {
	if !i.Ok() {
		return unavailableTime
	}
	if use24h {
		return i.At.Format("15:04")
	}
	return i.At.Format("3:04 PM")
}

func formatHebrewDate(hd hebcal.HebrewDate) string {
	return fmt.Sprintf("%d %s %d", hd.Day, hd.MonthName, hd.Year)
}

// zmanimRow pairs a display label with its computed instant.
type zmanimRow struct {
	label   string
	instant zmanim.Instant
}

func zmanimRows(res zmanim.Result) []zmanimRow {
	return []zmanimRow{
		{"Alos hashachar", res.Alos},
		{"Sunrise", res.Sunrise},
		{"Sof zman Shema (Gra)", res.SofZmanShemaGra},
		{"Sof zman Shema (MA)", res.SofZmanShemaMagenAvraham},
		{"Sof zman tefillah (Gra)", res.SofZmanTefillahGra},
		{"Sof zman tefillah (MA)", res.SofZmanTefillahMagenAvraham},
		{"Chatzos", res.Chatzot},
		{"Mincha gedola", res.MinchaGedola},
		{"Mincha ketana", res.MinchaKetana},
		{"Plag hamincha", res.PlagHamincha},
		{"Candle lighting", res.CandleLighting},
		{"Sunset", res.Sunset},
		{"Tzes hakochavim", res.Tzes},
	}
}

// renderZmanim lays the day's times out as a two-column table.
func renderZmanim(res zmanim.Result, use24h bool) string {
	var b strings.Builder

	switch res.Daylight {
	case zmanim.DaylightAlwaysAbove:
		b.WriteString(styleWarn.Render("The sun does not set at this location today.") + "\n")
	case zmanim.DaylightAlwaysBelow:
		b.WriteString(styleWarn.Render("The sun does not rise at this location today.") + "\n")
	}

	for _, row := range zmanimRows(res) {
		label := styleLabel.Render(fmt.Sprintf("%-24s", row.label))
		b.WriteString(label + styleValue.Render(formatInstant(row.instant, use24h)) + "\n")
	}
	return b.String()
}

// serviceCounts summarizes the navigation tree: applicable items out of
// total per service, in tree order.
func serviceCounts(tree *siddur.Tree) []string {
	var lines []string
	for _, cat := range tree.Categories {
		for _, svc := range cat.Services {
			total, applicable := 0, 0
			for _, bucket := range svc.Buckets {
				for _, item := range bucket.Items {
					total++
					if item.Applicable {
						applicable++
					}
				}
			}
			lines = append(lines, fmt.Sprintf("%s: %d of %d items apply", svc.Service.Title, applicable, total))
		}
	}
	return lines
}

// renderDashboard is the "today" view: date header, parasha, context
// facts, zmanim, and the per-service summary.
func renderDashboard(
	date time.Time,
	hd hebcal.HebrewDate,
	parasha string,
	res *zmanim.Result,
	fc *siddur.FilterContext,
	tree *siddur.Tree,
	use24h bool,
) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(formatHebrewDate(hd)) + "\n")
	b.WriteString(styleLabel.Render(date.Format("Monday, January 2 2006")) + "\n")
	b.WriteString(styleLabel.Render("Parashas ") + styleValue.Render(parasha) + "\n")

	var facts []string
	if fc.IsShabbat {
		facts = append(facts, "Shabbos")
	}
	if fc.IsRoshChodesh {
		facts = append(facts, "Rosh Chodesh")
	}
	if fc.IsOmer {
		facts = append(facts, fmt.Sprintf("Omer day %d", fc.OmerDay))
	}
	var events []string
	for name := range fc.Holidays {
		events = append(events, name)
	}
	for name := range fc.FastDays {
		events = append(events, name)
	}
	sort.Strings(events)
	facts = append(facts, events...)
	if len(facts) > 0 {
		b.WriteString(styleValue.Render(strings.Join(facts, " · ")) + "\n")
	}

	b.WriteString("\n")
	if res != nil {
		b.WriteString(renderZmanim(*res, use24h))
	} else {
		b.WriteString(styleWarn.Render("No location configured; pass --lat, --lon, and --tz for zmanim.") + "\n")
	}

	b.WriteString("\n")
	for _, line := range serviceCounts(tree) {
		b.WriteString(styleValue.Render(line) + "\n")
	}

	return b.String()
}
