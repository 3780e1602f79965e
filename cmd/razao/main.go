package main

import (
	"os"

	"github.com/razao-dev/razao/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
