package mapping

import (
	"strings"

	"github.com/emersion/go-vcard"

	"abook/internal/domain"
	"abook/internal/vcf"
)

var telTypes = []struct {
	field domain.Field
	typ   string
}{
	{domain.FieldPhone, vcard.TypeHome},
	{domain.FieldWorkphone, vcard.TypeWork},
	{domain.FieldMobile, vcard.TypeCell},
	{domain.FieldFax, vcard.TypeFax},
}

// ToVCard maps r to a vCard. UID and PHOTO are left to the caller.
func (m *Mapper) ToVCard(r domain.Record) vcard.Card {
	card := make(vcard.Card)

	if name := r.Get(domain.FieldName); name != "" {
		card.Add(vcard.FieldFormattedName, &vcard.Field{Value: name})
		n := vcf.SplitName(name)
		card.Add(vcard.FieldName, &vcard.Field{Value: vcf.JoinStructured(n.FamilyName, n.GivenName, "", "", "")})
	}

	for _, e := range r.Values(domain.FieldEmail) {
		card.Add(vcard.FieldEmail, &vcard.Field{Value: e})
	}

	if r.HasAny(domain.AddressFields...) {
		card.Add(vcard.FieldAddress, &vcard.Field{Value: vcf.JoinStructured(
			"", // post-office box
			r.Get(domain.FieldAddress2),
			r.Get(domain.FieldAddress),
			r.Get(domain.FieldCity),
			r.Get(domain.FieldState),
			r.Get(domain.FieldZip),
			r.Get(domain.FieldCountry),
		)})
	}

	for _, t := range telTypes {
		for _, v := range r.Values(t.field) {
			card.Add(vcard.FieldTelephone, &vcard.Field{
				Value:  v,
				Params: vcard.Params{vcard.ParamType: {t.typ}},
			})
		}
	}

	addAll(card, vcard.FieldNickname, r.Values(domain.FieldNick))
	addAll(card, vcard.FieldURL, r.Values(domain.FieldURL))
	addAll(card, vcard.FieldNote, r.Values(domain.FieldNotes))
	addAll(card, fieldXAnniversary, r.Values(domain.FieldAnniversary))
	if groups := r.Values(domain.FieldGroups); len(groups) > 0 {
		card.Add(vcard.FieldCategories, &vcard.Field{Value: strings.Join(groups, ",")})
	}

	for _, f := range m.cfg.Order(r) {
		if f.IsStandard() {
			continue
		}
		addAll(card, m.propertyFor(f), r.Values(f))
	}
	return card
}

func addAll(card vcard.Card, prop string, values []string) {
	for _, v := range values {
		card.Add(prop, &vcard.Field{Value: v})
	}
}
