package types

import (
	"errors"
	"fmt"
)

// FormatError reports malformed input. It aborts the whole conversion.
type FormatError struct {
	File string // empty until the caller knows the source name
	Line int    // 1-based, 0 if unknown
	Msg  string
	Err  error // underlying decoder error, if any
}

func (e *FormatError) Error() string {
	loc := e.File
	if loc == "" {
		loc = "input"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", loc, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Errorf builds a FormatError at line.
func Errorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// WithFile attaches a source name to any FormatError in err's chain.
func WithFile(err error, file string) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.File == "" {
		fe.File = file
	}
	return err
}

// IOError reports a missing or unreadable input or an unwritable output.
type IOError struct {
	Op   string // "read", "write", "create", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// UnsupportedFieldWarning is a non-fatal notice that a property or field
// was skipped.
type UnsupportedFieldWarning struct {
	Property string
	Line     int // 0 when raised after parsing
	Reason   string
}

func (w UnsupportedFieldWarning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", w.Line, w.Property, w.Reason)
	}
	return fmt.Sprintf("%s: %s", w.Property, w.Reason)
}
