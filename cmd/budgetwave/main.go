package main

import (
	"os"

	"github.com/budgetwave-dev/budgetwave/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
