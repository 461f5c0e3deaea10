package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luachapp/luach-api/internal/domain/zmanim"
)

var zmanimCmd = &cobra.Command{
	Use:   "zmanim",
	Short: "Print the day's halachic times",
	RunE:  runZmanim,
}

func runZmanim(cmd *cobra.Command, args []string) error {
	zone, err := resolveZone()
	if err != nil {
		return err
	}
	date, err := resolveDate(zone)
	if err != nil {
		return err
	}

	res, err := zmanim.Compute(date, resolveLocation(cmd, zone), resolveOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleTitle.Render(date.Format("Monday, January 2 2006")))
	fmt.Fprint(out, renderZmanim(res, flag24h))
	return nil
}
