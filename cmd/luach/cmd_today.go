package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luachapp/luach-api/internal/catalog"
	"github.com/luachapp/luach-api/internal/service/luach"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print the full dashboard for a date",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	zone, err := resolveZone()
	if err != nil {
		return err
	}
	date, err := resolveDate(zone)
	if err != nil {
		return err
	}
	locale, err := resolveLocale()
	if err != nil {
		return err
	}
	nusach, err := resolveNusach()
	if err != nil {
		return err
	}
	mode, err := resolveMode()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(flagCatalogDir)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	svc := luach.NewService(newContextBuilder(), cat, cliLogger())
	today, err := svc.Today(cmd.Context(), luach.TodayRequest{
		Date:           date,
		Location:       resolveLocation(cmd, zone),
		Options:        resolveOptions(),
		Locale:         locale,
		Nusach:         nusach,
		Mode:           mode,
		ApplicableOnly: true,
		HasMinyan:      flagMinyan,
		IsMourner:      flagMourner,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderDashboard(
		today.Date, today.HebrewDate, today.Parasha,
		today.Zmanim, today.Context, today.Navigation, flag24h))
	return nil
}
