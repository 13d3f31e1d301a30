package abook

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"abook/internal/domain"
)

const header = "# abook addressbook file\n\n"

// Encode writes b to w. Fields are written in cfg's canonical order and
// empty fields are skipped.
func Encode(w io.Writer, b *Book, cfg domain.FieldConfig) error {
	bw := bufio.NewWriter(w)

	program, version := b.Program, b.Version
	if program == "" {
		program = Program
	}
	if version == "" {
		version = Version
	}
	fmt.Fprint(bw, header)
	fmt.Fprintf(bw, "[format]\nprogram=%s\nversion=%s\n\n\n", program, version)

	for _, e := range b.Entries {
		fmt.Fprintf(bw, "[%d]\n", e.ID)
		for _, f := range cfg.Order(e.Record) {
			if !f.Valid() {
				return fmt.Errorf("entry %d: invalid field name %q", e.ID, f)
			}
			writeValue(bw, f, strings.Join(e.Record.Values(f), ","))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Serialize renders records as a fresh addressbook numbered from 0.
func Serialize(records []domain.Record, cfg domain.FieldConfig) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, NewBook(records), cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeValue(w *bufio.Writer, f domain.Field, v string) {
	lines := strings.Split(strings.ReplaceAll(v, "\r\n", "\n"), "\n")
	fmt.Fprintf(w, "%s=%s\n", f, lines[0])
	for _, l := range lines[1:] {
		fmt.Fprintf(w, "\t%s\n", l)
	}
}
