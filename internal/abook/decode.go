package abook

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"abook/internal/domain"
)

const maxLine = 1 << 20

type section int

const (
	outside section = iota
	inFormat
	inEntry
)

// Decode reads an addressbook from r.
func Decode(r io.Reader) (*Book, error) {
	b := &Book{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		state   = outside
		cur     domain.Record
		lastKey domain.Field
		hasKey  bool
		seen    = make(map[int]bool)
		keys    map[domain.Field]bool
		lineNo  int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if hasKey && line != "" && (line[0] == ' ' || line[0] == '\t') {
			// Only the single indent written by Encode is markup.
			text := line[1:]
			if state == inEntry {
				appendContinuation(cur, lastKey, text)
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
			hasKey = false
			continue
		}

		if trimmed[0] == '[' {
			hasKey = false
			if !strings.HasSuffix(trimmed, "]") {
				return nil, domain.Errorf(lineNo, "malformed section header %q", trimmed)
			}
			name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			if strings.EqualFold(name, "format") {
				state = inFormat
				continue
			}
			id, ok := parseID(name)
			if !ok {
				return nil, domain.Errorf(lineNo, "section header %q is not a numeric contact ID", trimmed)
			}
			if seen[id] {
				return nil, domain.Errorf(lineNo, "duplicate contact ID %d", id)
			}
			seen[id] = true
			cur = domain.NewRecord()
			keys = make(map[domain.Field]bool)
			b.Entries = append(b.Entries, Entry{ID: id, Record: cur})
			state = inEntry
			continue
		}

		eq := strings.IndexByte(trimmed, '=')
		if eq < 0 {
			return nil, domain.Errorf(lineNo, "expected key=value, got %q", trimmed)
		}
		key := domain.ParseField(trimmed[:eq])
		if key == "" {
			return nil, domain.Errorf(lineNo, "empty key")
		}
		value := strings.TrimSpace(trimmed[eq+1:])

		switch state {
		case outside:
			return nil, domain.Errorf(lineNo, "%q outside of any section", trimmed)
		case inFormat:
			switch key {
			case "program":
				b.Program = value
			case "version":
				b.Version = value
			}
		case inEntry:
			if keys[key] {
				return nil, domain.Errorf(lineNo, "duplicate key %q", key)
			}
			keys[key] = true
			if key.IsList() {
				cur.Add(key, splitList(value)...)
			} else {
				cur.Add(key, value)
			}
		}
		lastKey, hasKey = key, true
	}
	if err := sc.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, domain.Errorf(lineNo+1, "line longer than %d bytes", maxLine)
		}
		return nil, &domain.IOError{Op: "read", Err: err}
	}
	return b, nil
}

// Parse decodes text and returns its contacts in file order.
func Parse(text string) ([]domain.Record, error) {
	b, err := Decode(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return b.Records(), nil
}

func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	return id, err == nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// appendContinuation adds a continuation line to the last value of f. A
// key with an empty first line keeps the leading newline.
func appendContinuation(r domain.Record, f domain.Field, text string) {
	vs := r[f]
	if len(vs) == 0 {
		r[f] = append(r[f], "\n"+text)
		return
	}
	vs[len(vs)-1] += "\n" + text
}
