package main

import (
	"os"

	"abook/cmd/vcf2abook/commands"
	"abook/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
