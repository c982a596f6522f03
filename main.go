// Daybook - a personal wellbeing logbook for the command line.
package main

import (
	"os"

	"github.com/daybook-cli/daybook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
