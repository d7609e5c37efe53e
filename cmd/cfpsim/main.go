package main

import (
	"os"

	"github.com/gridironlabs/cfpsim/cmd/cfpsim/commands"
)

// main is the entry point for the cfpsim CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
