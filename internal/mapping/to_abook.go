package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emersion/go-vcard"

	"abook/internal/domain"
	"abook/internal/vcf"
)

// ToAbook maps c to an Abook record. Properties Abook cannot hold are
// reported to warn and skipped. UID and PHOTO are left to the caller.
func (m *Mapper) ToAbook(c vcard.Card, warn domain.WarningSink) domain.Record {
	if warn == nil {
		warn = domain.Discard
	}
	r := domain.NewRecord()
	drop := func(prop, format string, args ...any) {
		warn.Warn(domain.UnsupportedFieldWarning{Property: prop, Reason: fmt.Sprintf(format, args...)})
	}

	r.Set(domain.FieldName, displayName(c))

	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop := strings.ToUpper(key)
		fields := c[key]
		switch prop {
		case vcard.FieldFormattedName, vcard.FieldName, vcard.FieldVersion,
			vcard.FieldUID, vcard.FieldPhoto, vcard.FieldProductID, vcard.FieldRevision:
			// handled above or by the caller
		case vcard.FieldEmail:
			for _, f := range fields {
				r.Add(domain.FieldEmail, strings.TrimSpace(f.Value))
			}
		case vcard.FieldTelephone:
			for _, f := range fields {
				target := telField(f)
				if r.Has(target) {
					drop(prop, "second %s number %q has no Abook field", target, f.Value)
					continue
				}
				r.Add(target, strings.TrimSpace(f.Value))
			}
		case vcard.FieldAddress:
			address(fields, r, drop)
		case vcard.FieldNickname:
			single(r, domain.FieldNick, prop, fields, drop)
		case vcard.FieldURL:
			single(r, domain.FieldURL, prop, fields, drop)
		case vcard.FieldNote:
			single(r, domain.FieldNotes, prop, fields, drop)
		case vcard.FieldAnniversary, fieldXAnniversary:
			single(r, domain.FieldAnniversary, prop, fields, drop)
		case vcard.FieldCategories:
			for _, f := range fields {
				for _, g := range strings.Split(f.Value, ",") {
					r.Add(domain.FieldGroups, strings.TrimSpace(g))
				}
			}
		case vcard.FieldOrganization, vcard.FieldTitle, vcard.FieldRole, vcard.FieldBirthday:
			target, ok := m.fieldForProperty(prop)
			if !ok {
				drop(prop, "no Abook field declared for it")
				continue
			}
			single(r, target, prop, fields, drop)
		default:
			target, ok := m.extensionField(prop)
			if !ok {
				drop(prop, "no Abook equivalent")
				continue
			}
			for _, f := range fields {
				r.Add(target, f.Value)
			}
		}
	}
	return r
}

// extensionField resolves X-ABOOK-<NAME> and X-<LABEL> properties.
func (m *Mapper) extensionField(prop string) (domain.Field, bool) {
	if name, ok := strings.CutPrefix(prop, m.prefix); ok {
		f := decodeName(name)
		return f, f.Valid()
	}
	if label, ok := strings.CutPrefix(prop, "X-"); ok {
		if cf, ok := m.cfg.ByLabel(label); ok {
			return cf.Name, true
		}
		if cf, ok := m.cfg.CustomField(domain.ParseField(label)); ok {
			return cf.Name, true
		}
	}
	return "", false
}

// address fills the address fields from the first ADR. Components are
// PO box, extended, street, locality, region, postal code, country.
func address(fields []*vcard.Field, r domain.Record, drop func(string, string, ...any)) {
	if len(fields) == 0 {
		return
	}
	a := vcf.SplitStructured(fields[0].Value, 7)
	if box := strings.TrimSpace(a[0]); box != "" {
		drop(vcard.FieldAddress, "post-office box %q has no Abook field", box)
	}
	r.Set(domain.FieldAddress2, strings.TrimSpace(a[1]))
	r.Set(domain.FieldAddress, strings.TrimSpace(a[2]))
	r.Set(domain.FieldCity, strings.TrimSpace(a[3]))
	r.Set(domain.FieldState, strings.TrimSpace(a[4]))
	r.Set(domain.FieldZip, strings.TrimSpace(a[5]))
	r.Set(domain.FieldCountry, strings.TrimSpace(a[6]))
	for range fields[1:] {
		drop(vcard.FieldAddress, "Abook holds a single address, extra one dropped")
	}
}

func single(r domain.Record, target domain.Field, prop string, fields []*vcard.Field, drop func(string, string, ...any)) {
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			continue
		}
		if r.Has(target) {
			drop(prop, "Abook holds one %s, %q dropped", target, v)
			continue
		}
		r.Add(target, v)
	}
}

// displayName prefers FN and falls back to the N components.
func displayName(c vcard.Card) string {
	if fn := strings.TrimSpace(c.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	n := c.Get(vcard.FieldName)
	if n == nil {
		return ""
	}
	parts := vcf.SplitStructured(n.Value, 5)
	var out []string
	for _, p := range []string{parts[1], parts[2], parts[0]} {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// telField picks the Abook phone field for a TEL by its TYPE parameter.
func telField(f *vcard.Field) domain.Field {
	var fax, cell, work bool
	for k, vals := range f.Params {
		if !strings.EqualFold(k, vcard.ParamType) {
			continue
		}
		for _, v := range vals {
			for _, t := range strings.Split(v, ",") {
				switch strings.ToLower(strings.TrimSpace(t)) {
				case vcard.TypeFax:
					fax = true
				case vcard.TypeCell, "mobile":
					cell = true
				case vcard.TypeWork:
					work = true
				}
			}
		}
	}
	switch {
	case fax:
		return domain.FieldFax
	case cell:
		return domain.FieldMobile
	case work:
		return domain.FieldWorkphone
	default:
		return domain.FieldPhone
	}
}
