package vcf

import (
	"strings"

	"github.com/emersion/go-vcard"
)

// Structured properties hold ';'-separated components. Their card values
// are kept in escaped form so that a ';' inside a component survives.
var structured = map[string]bool{
	vcard.FieldName:    true,
	vcard.FieldAddress: true,
}

var componentEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// JoinStructured escapes every component and joins them with ';'.
func JoinStructured(components ...string) string {
	escaped := make([]string, len(components))
	for i, c := range components {
		escaped[i] = componentEscaper.Replace(c)
	}
	return strings.Join(escaped, ";")
}

// SplitStructured splits value on unescaped ';' and unescapes each
// component. The result is padded with empty strings to at least n
// components.
func SplitStructured(value string, n int) []string {
	var (
		out []string
		sb  strings.Builder
	)
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '\\' && i+1 < len(value):
			i++
			switch value[i] {
			case 'n', 'N':
				sb.WriteByte('\n')
			default:
				sb.WriteByte(value[i])
			}
		case c == ';':
			out = append(out, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	out = append(out, sb.String())
	for len(out) < n {
		out = append(out, "")
	}
	return out
}

// keepEscapes doubles the backslashes in the value of a structured content
// line. go-vcard unescapes values once, so the card keeps the escaped form.
func keepEscapes(text string) string {
	i := valueStart(text)
	if i < 0 {
		return text
	}
	return text[:i] + strings.ReplaceAll(text[i:], `\`, `\\`)
}

// valueStart returns the index just after the ':' that ends the name and
// parameters of a content line, or -1.
func valueStart(text string) int {
	quoted := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			quoted = !quoted
		case ':':
			if !quoted {
				return i + 1
			}
		}
	}
	return -1
}
