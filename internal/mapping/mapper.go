package mapping

import (
	"strings"

	"github.com/emersion/go-vcard"

	"abook/internal/domain"
)

// DefaultExtensionPrefix prefixes properties carrying Abook-only fields.
const DefaultExtensionPrefix = "X-ABOOK-"

// Anniversary property written for the anniversary field; vCard 3.0 has
// no standard one.
const fieldXAnniversary = "X-ANNIVERSARY"

// Custom field names that map onto a real vCard property when declared in
// abookrc.
var directProperties = map[string][]domain.Field{
	vcard.FieldOrganization: {"org", "organization", "company"},
	vcard.FieldTitle:        {"title", "jobtitle"},
	vcard.FieldRole:         {"role"},
	vcard.FieldBirthday:     {"bday", "birthday"},
}

// Mapper converts records with one run's field configuration.
type Mapper struct {
	cfg    domain.FieldConfig
	prefix string
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithExtensionPrefix overrides DefaultExtensionPrefix.
func WithExtensionPrefix(p string) Option {
	return func(m *Mapper) {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			if !strings.HasPrefix(p, "X-") {
				p = "X-" + p
			}
			if !strings.HasSuffix(p, "-") {
				p += "-"
			}
			m.prefix = p
		}
	}
}

// New returns a Mapper for cfg.
func New(cfg domain.FieldConfig, opts ...Option) *Mapper {
	m := &Mapper{cfg: cfg, prefix: DefaultExtensionPrefix}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Config returns the field configuration in use.
func (m *Mapper) Config() domain.FieldConfig { return m.cfg }

// ToVCard maps an Abook record to a vCard with the given configuration.
func ToVCard(r domain.Record, cfg domain.FieldConfig) vcard.Card { return New(cfg).ToVCard(r) }

// ToAbook maps a vCard to an Abook record with the given configuration.
func ToAbook(c vcard.Card, cfg domain.FieldConfig, warn domain.WarningSink) domain.Record {
	return New(cfg).ToAbook(c, warn)
}

// propertyFor returns the vCard property carrying a non-standard field.
func (m *Mapper) propertyFor(f domain.Field) string {
	if _, declared := m.cfg.CustomField(f); declared {
		for prop, names := range directProperties {
			for _, n := range names {
				if n == f {
					return prop
				}
			}
		}
	}
	return m.prefix + encodeName(f)
}

// fieldForProperty returns the declared custom field that receives a
// direct property such as ORG.
func (m *Mapper) fieldForProperty(prop string) (domain.Field, bool) {
	for _, n := range directProperties[prop] {
		if _, ok := m.cfg.CustomField(n); ok {
			return n, true
		}
	}
	return "", false
}
