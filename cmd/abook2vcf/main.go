package main

import (
	"os"

	"abook/cmd/abook2vcf/commands"
	"abook/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
