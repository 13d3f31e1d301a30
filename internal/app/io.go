package app

import (
	"bufio"
	"io"

	"abook/internal/domain"
)

// Stdio names standard input or output on the command line.
const Stdio = "-"

// IsStdio reports whether path names a standard stream.
func IsStdio(path string) bool { return path == "" || path == Stdio }

// ReadInput reads the named input in full; Stdio or "" is standard input.
// The returned name labels errors.
func (w *Wire) ReadInput(path string) ([]byte, string, error) {
	if IsStdio(path) {
		b, err := io.ReadAll(w.Stdin)
		if err != nil {
			return nil, "<stdin>", &domain.IOError{Op: "read", Path: "<stdin>", Err: err}
		}
		return b, "<stdin>", nil
	}
	b, err := w.Files.ReadFile(path)
	return b, path, err
}

// Output runs write against the named output. A file is replaced
// atomically; Stdio or "" is standard output.
func (w *Wire) Output(path string, write func(io.Writer) error) error {
	if IsStdio(path) {
		bw := bufio.NewWriter(w.Stdout)
		if err := write(bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	return w.Outputs.WriteFile(path, write)
}
