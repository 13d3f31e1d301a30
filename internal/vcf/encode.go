package vcf

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/emersion/go-vcard"
)

// Version is the vCard version written by Encode.
const Version = "3.0"

// MaxLineOctets is the longest physical line written, excluding CRLF.
const MaxLineOctets = 75

var valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, ",", `\,`)

// listEscaper keeps commas as separators of multi-valued properties.
var listEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`)

// Encode writes cards to w.
func Encode(w io.Writer, cards []vcard.Card) error {
	bw := bufio.NewWriter(w)
	for _, c := range cards {
		if err := encodeCard(bw, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Serialize renders cards as vCard text.
func Serialize(cards []vcard.Card) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, cards); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encodeCard(w *bufio.Writer, c vcard.Card) error {
	put := func(name string, f *vcard.Field) error {
		_, err := w.WriteString(foldLine(formatLine(name, f)))
		return err
	}

	if err := put("BEGIN", &vcard.Field{Value: "VCARD"}); err != nil {
		return err
	}
	if err := put(vcard.FieldVersion, &vcard.Field{Value: Version}); err != nil {
		return err
	}

	fns := c[vcard.FieldFormattedName]
	if len(fns) == 0 {
		fns = []*vcard.Field{{Value: formattedFromName(c.Value(vcard.FieldName))}}
	}
	for _, f := range fns {
		if err := put(vcard.FieldFormattedName, f); err != nil {
			return err
		}
	}
	ns := c[vcard.FieldName]
	if len(ns) == 0 {
		ns = []*vcard.Field{{Value: nameFromFormatted(c.PreferredValue(vcard.FieldFormattedName))}}
	}
	for _, f := range ns {
		if err := put(vcard.FieldName, f); err != nil {
			return err
		}
	}

	keys := make([]string, 0, len(c))
	for k := range c {
		switch strings.ToUpper(k) {
		case vcard.FieldFormattedName, vcard.FieldName, vcard.FieldVersion, "BEGIN", "END":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, f := range c[k] {
			if err := put(strings.ToUpper(k), f); err != nil {
				return err
			}
		}
	}
	return put("END", &vcard.Field{Value: "VCARD"})
}

// formatLine renders one unfolded content line, parameters sorted by name.
func formatLine(name string, f *vcard.Field) string {
	var sb strings.Builder
	if f.Group != "" {
		sb.WriteString(f.Group)
		sb.WriteByte('.')
	}
	sb.WriteString(name)

	params := make([]string, 0, len(f.Params))
	for k := range f.Params {
		params = append(params, k)
	}
	sort.Strings(params)
	for _, k := range params {
		vals := f.Params[k]
		if len(vals) == 0 {
			continue
		}
		sb.WriteByte(';')
		sb.WriteString(strings.ToUpper(k))
		sb.WriteByte('=')
		for i, v := range vals {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(quoteParam(v))
		}
	}

	sb.WriteByte(':')
	switch name {
	case "BEGIN", "END", vcard.FieldVersion:
		sb.WriteString(f.Value)
	case vcard.FieldCategories, vcard.FieldNickname:
		sb.WriteString(listEscaper.Replace(f.Value))
	case vcard.FieldName, vcard.FieldAddress:
		// already escaped per component
		sb.WriteString(strings.ReplaceAll(f.Value, "\n", `\n`))
	default:
		sb.WriteString(valueEscaper.Replace(f.Value))
	}
	return sb.String()
}

func quoteParam(v string) string {
	if strings.ContainsAny(v, `:;,`) {
		return `"` + strings.ReplaceAll(v, `"`, "'") + `"`
	}
	return v
}

// foldLine splits line into physical lines of at most MaxLineOctets
// octets, never inside a UTF-8 sequence, and terminates each with CRLF.
// Continuation lines start with a single space.
func foldLine(line string) string {
	if len(line) <= MaxLineOctets {
		return line + "\r\n"
	}
	var sb strings.Builder
	limit := MaxLineOctets
	n := 0
	for len(line) > 0 {
		_, size := utf8.DecodeRuneInString(line)
		if n+size > limit {
			sb.WriteString("\r\n ")
			limit = MaxLineOctets - 1
			n = 0
		}
		sb.WriteString(line[:size])
		line = line[size:]
		n += size
	}
	sb.WriteString("\r\n")
	return sb.String()
}

// formattedFromName builds a display name from an N value.
func formattedFromName(n string) string {
	c := SplitStructured(n, 5)
	var parts []string
	for _, p := range []string{c[3], c[1], c[2], c[0], c[4]} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// nameFromFormatted splits a display name into an N value: the last word
// is the family name and the rest the given name.
func nameFromFormatted(fn string) string {
	n := SplitName(fn)
	return JoinStructured(n.FamilyName, n.GivenName, n.AdditionalName, n.HonorificPrefix, n.HonorificSuffix)
}

// SplitName splits a display name the way Abook names are exported: the
// last word is the family name, everything before it the given name.
func SplitName(fn string) *vcard.Name {
	fn = strings.TrimSpace(fn)
	if fn == "" {
		return &vcard.Name{}
	}
	i := strings.LastIndexAny(fn, " \t")
	if i < 0 {
		return &vcard.Name{FamilyName: fn}
	}
	return &vcard.Name{
		FamilyName: strings.TrimSpace(fn[i+1:]),
		GivenName:  strings.TrimSpace(fn[:i]),
	}
}
