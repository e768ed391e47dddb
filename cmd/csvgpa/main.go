package main

import (
	"os"

	"github.com/wonny/csvgpa/cmd/csvgpa/commands"
)

// main is the entry point for the csvgpa CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
