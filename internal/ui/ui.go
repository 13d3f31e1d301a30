// Package ui prints short coloured status lines for the command-line tools.
//
// Output goes to standard error so that a converted vCard can be written
// to standard output at the same time.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Out receives every status line.
var Out io.Writer = os.Stderr

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Gray   = color.New(color.FgHiBlack).SprintFunc()
)

// Setup enables colour only when standard error is a terminal and
// noColor is false.
func Setup(noColor bool) {
	color.NoColor = noColor || !IsTerminal(os.Stderr)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success prints "✓ message".
func Success(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Green("✓"), fmt.Sprintf(format, args...))
}

// Warning prints "⚠ message".
func Warning(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Yellow("⚠"), fmt.Sprintf(format, args...))
}

// Error prints "✗ message".
func Error(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Red("✗"), fmt.Sprintf(format, args...))
}

// Dim prints a secondary line in grey.
func Dim(format string, args ...any) {
	fmt.Fprintf(Out, "  %s\n", Gray(fmt.Sprintf(format, args...)))
}
