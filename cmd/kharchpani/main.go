package main

import (
	"os"

	"github.com/kharchpani-dev/kharchpani/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
