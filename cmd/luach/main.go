// Package main implements the luach command line tool: a terminal
// companion printing the Hebrew date, halachic times, and the day's
// applicable liturgy.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
