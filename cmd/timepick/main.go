package main

import (
	"os"

	"timepick/cmd/timepick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
