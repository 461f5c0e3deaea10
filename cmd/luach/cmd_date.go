package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luachapp/luach-api/internal/domain/hebcal"
)

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Print the Hebrew date and parasha for a civil date",
	RunE:  runDate,
}

func runDate(cmd *cobra.Command, args []string) error {
	zone, err := resolveZone()
	if err != nil {
		return err
	}
	date, err := resolveDate(zone)
	if err != nil {
		return err
	}

	hd := hebcal.FromGregorian(date)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleTitle.Render(formatHebrewDate(hd)))
	fmt.Fprintln(out, styleLabel.Render(date.Format("Monday, January 2 2006")))
	fmt.Fprintln(out, styleLabel.Render("Parashas ")+styleValue.Render(hebcal.WeekdayParasha(date)))
	if hd.IsLeapYear {
		fmt.Fprintln(out, styleLabel.Render(fmt.Sprintf("%d is a leap year", hd.Year)))
	}
	return nil
}
