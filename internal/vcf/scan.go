package vcf

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"abook/internal/domain"
)

// logicalLine is an unfolded content line and the physical line it began on.
type logicalLine struct {
	text string
	line int
}

// block is the content between BEGIN:VCARD and END:VCARD.
type block struct {
	start int
	lines []logicalLine
}

// unfold reads r and joins folded lines.
func unfold(r io.Reader) ([]logicalLine, error) {
	br := bufio.NewReader(r)
	var (
		out    []logicalLine
		lineNo int
	)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.IOError{Op: "read", Err: err}
		}
		if raw == "" && err != nil {
			break
		}
		lineNo++
		raw = strings.TrimRight(raw, "\r\n")
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		if len(out) > 0 && raw != "" && (raw[0] == ' ' || raw[0] == '\t') {
			out[len(out)-1].text += raw[1:]
		} else {
			out = append(out, logicalLine{text: raw, line: lineNo})
		}
		if err != nil {
			break
		}
	}
	return out, nil
}

// split groups logical lines into blocks. BEGIN and END lines are not
// kept.
func split(lines []logicalLine) ([]block, error) {
	var (
		blocks []block
		cur    *block
	)
	for _, l := range lines {
		text := strings.TrimSpace(l.text)
		if text == "" {
			continue
		}
		switch {
		case isMarker(text, "BEGIN"):
			if cur != nil {
				return nil, domain.Errorf(l.line, "nested BEGIN:VCARD inside the vCard started on line %d", cur.start)
			}
			cur = &block{start: l.line}
		case isMarker(text, "END"):
			if cur == nil {
				return nil, domain.Errorf(l.line, "END:VCARD without BEGIN:VCARD")
			}
			blocks = append(blocks, *cur)
			cur = nil
		case cur == nil:
			return nil, domain.Errorf(l.line, "content outside of a vCard block")
		default:
			if !strings.Contains(l.text, ":") {
				return nil, domain.Errorf(l.line, "property line without ':'")
			}
			cur.lines = append(cur.lines, l)
		}
	}
	if cur != nil {
		return nil, domain.Errorf(cur.start, "BEGIN:VCARD without matching END:VCARD")
	}
	return blocks, nil
}

func isMarker(text, kind string) bool {
	name, value, ok := strings.Cut(text, ":")
	return ok && strings.EqualFold(strings.TrimSpace(name), kind) &&
		strings.EqualFold(strings.TrimSpace(value), "VCARD")
}

// propertyName returns the upper-cased property name of a content line,
// without group prefix or parameters.
func propertyName(text string) string {
	end := strings.IndexAny(text, ";:")
	if end < 0 {
		end = len(text)
	}
	name := text[:end]
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return strings.ToUpper(strings.TrimSpace(name))
}
