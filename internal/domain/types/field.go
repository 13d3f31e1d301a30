package types

import "strings"

// Field names an Abook addressbook field.
//
// The standard fields form a closed set; any other lower-case name is a
// custom field declared in abookrc (or carried through from a vCard
// extension property).
type Field string

// Standard Abook fields, in canonical order.
const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldAddress     Field = "address"
	FieldAddress2    Field = "address2"
	FieldCity        Field = "city"
	FieldState       Field = "state"
	FieldZip         Field = "zip"
	FieldCountry     Field = "country"
	FieldPhone       Field = "phone"
	FieldWorkphone   Field = "workphone"
	FieldFax         Field = "fax"
	FieldMobile      Field = "mobile"
	FieldNick        Field = "nick"
	FieldURL         Field = "url"
	FieldNotes       Field = "notes"
	FieldAnniversary Field = "anniversary"
	FieldGroups      Field = "groups"
)

// StandardFields lists the standard fields in canonical order.
var StandardFields = []Field{
	FieldName, FieldEmail,
	FieldAddress, FieldAddress2, FieldCity, FieldState, FieldZip, FieldCountry,
	FieldPhone, FieldWorkphone, FieldFax, FieldMobile,
	FieldNick, FieldURL, FieldNotes, FieldAnniversary, FieldGroups,
}

// AddressFields are the sub-fields grouped into a single vCard ADR value.
var AddressFields = []Field{
	FieldAddress, FieldAddress2, FieldCity, FieldState, FieldZip, FieldCountry,
}

var standardIndex = func() map[Field]int {
	m := make(map[Field]int, len(StandardFields))
	for i, f := range StandardFields {
		m[f] = i
	}
	return m
}()

// ParseField normalises a raw key into a Field.
func ParseField(s string) Field { return Field(strings.ToLower(strings.TrimSpace(s))) }

// String returns the field name.
func (f Field) String() string { return string(f) }

// IsStandard reports whether f belongs to the standard set.
func (f Field) IsStandard() bool {
	_, ok := standardIndex[f]
	return ok
}

// IsList reports whether Abook stores f as a comma-separated list.
func (f Field) IsList() bool { return f == FieldEmail || f == FieldGroups }

// Valid reports whether f can be written as an Abook key.
func (f Field) Valid() bool {
	if f == "" {
		return false
	}
	for _, r := range f {
		if r == '=' || r == '[' || r == ']' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return false
		}
	}
	return true
}
