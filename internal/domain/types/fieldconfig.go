package types

import (
	"sort"
	"strings"
	"unicode"
)

// CustomField is a field declared with `field <name> = <Label>[, <type>]`.
type CustomField struct {
	Name  Field
	Label string
	Type  string // "string" unless declared otherwise (list, date, emails)
}

// View is a named, ordered group of fields used for display.
type View struct {
	Name   string
	Fields []Field
}

// FieldConfig is the read-only field/view configuration of one conversion
// run.
type FieldConfig struct {
	Custom []CustomField
	Views  []View
}

// DefaultFieldConfig mirrors the views abook ships without an abookrc.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Views: []View{
			{Name: "CONTACT", Fields: []Field{FieldName, FieldEmail}},
			{Name: "ADDRESS", Fields: []Field{FieldAddress, FieldAddress2, FieldCity, FieldState, FieldZip, FieldCountry}},
			{Name: "PHONE", Fields: []Field{FieldPhone, FieldWorkphone, FieldFax, FieldMobile}},
			{Name: "OTHER", Fields: []Field{FieldNick, FieldURL, FieldNotes}},
		},
	}
}

// CustomField returns the declaration of f, if any.
func (c FieldConfig) CustomField(f Field) (CustomField, bool) {
	for _, cf := range c.Custom {
		if cf.Name == f {
			return cf, true
		}
	}
	return CustomField{}, false
}

// Alias returns the display label of f: its configured label, or the
// field name itself.
func (c FieldConfig) Alias(f Field) string {
	if cf, ok := c.CustomField(f); ok && cf.Label != "" {
		return cf.Label
	}
	return string(f)
}

// ByLabel finds a custom field by its label, ignoring case, blanks and
// punctuation other than '-'.
func (c FieldConfig) ByLabel(label string) (CustomField, bool) {
	key := LabelKey(label)
	if key == "" {
		return CustomField{}, false
	}
	for _, cf := range c.Custom {
		if LabelKey(cf.Label) == key {
			return cf, true
		}
	}
	return CustomField{}, false
}

// Order returns the fields of r in canonical order: standard fields
// first, then non-standard fields in view order, then declared custom
// fields, then anything else sorted by name.
func (c FieldConfig) Order(r Record) []Field {
	out := make([]Field, 0, len(r))
	seen := make(map[Field]bool, len(r))
	take := func(f Field) {
		if seen[f] || !r.Has(f) {
			return
		}
		seen[f] = true
		out = append(out, f)
	}
	for _, f := range StandardFields {
		take(f)
	}
	for _, v := range c.Views {
		for _, f := range v.Fields {
			take(f)
		}
	}
	for _, cf := range c.Custom {
		take(cf.Name)
	}
	var rest []Field
	for f := range r {
		if !seen[f] && r.Has(f) {
			rest = append(rest, f)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// LabelKey normalises a label or property suffix for comparison.
func LabelKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		case r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
