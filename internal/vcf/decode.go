package vcf

import (
	"errors"
	"io"
	"strings"

	"github.com/emersion/go-vcard"

	"abook/internal/domain"
)

// Properties kept on parse. Every X- property is kept as well.
var recognized = map[string]bool{
	vcard.FieldName:          true,
	vcard.FieldFormattedName: true,
	vcard.FieldEmail:         true,
	vcard.FieldTelephone:     true,
	vcard.FieldAddress:       true,
	vcard.FieldNote:          true,
	vcard.FieldURL:           true,
	vcard.FieldNickname:      true,
	vcard.FieldOrganization:  true,
	vcard.FieldTitle:         true,
	vcard.FieldRole:          true,
	vcard.FieldBirthday:      true,
	vcard.FieldUID:           true,
	vcard.FieldPhoto:         true,
	vcard.FieldCategories:    true,
	vcard.FieldAnniversary:   true,
}

// Consumed without a warning and not kept.
var ignored = map[string]bool{
	vcard.FieldVersion:   true,
	vcard.FieldProductID: true,
	vcard.FieldRevision:  true,
}

// Recognized reports whether parsing keeps property name.
func Recognized(name string) bool {
	name = strings.ToUpper(name)
	return recognized[name] || strings.HasPrefix(name, "X-")
}

// Decode reads every vCard in r. Unsupported properties are reported to
// warn and dropped; malformed input yields a *domain.FormatError.
func Decode(r io.Reader, warn domain.WarningSink) ([]vcard.Card, error) {
	if warn == nil {
		warn = domain.Discard
	}
	lines, err := unfold(r)
	if err != nil {
		return nil, err
	}
	blocks, err := split(lines)
	if err != nil {
		return nil, err
	}
	cards := make([]vcard.Card, 0, len(blocks))
	for _, b := range blocks {
		card, err := decodeBlock(b, warn)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Parse decodes text.
func Parse(text string, warn domain.WarningSink) ([]vcard.Card, error) {
	return Decode(strings.NewReader(text), warn)
}

func decodeBlock(b block, warn domain.WarningSink) (vcard.Card, error) {
	var sb strings.Builder
	sb.WriteString("BEGIN:VCARD\r\n")
	for _, l := range b.lines {
		name := propertyName(l.text)
		switch {
		case name == "":
			return nil, domain.Errorf(l.line, "property line without a name")
		case ignored[name]:
			continue
		case !Recognized(name):
			warn.Warn(domain.UnsupportedFieldWarning{
				Property: name,
				Line:     l.line,
				Reason:   "unsupported vCard property, dropped",
			})
			continue
		}
		if structured[name] {
			sb.WriteString(keepEscapes(l.text))
		} else {
			sb.WriteString(l.text)
		}
		sb.WriteString("\r\n")
	}
	sb.WriteString("END:VCARD\r\n")

	card, err := vcard.NewDecoder(strings.NewReader(sb.String())).Decode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &domain.FormatError{Line: b.start, Msg: "invalid vCard", Err: err}
	}
	if card == nil {
		card = make(vcard.Card)
	}
	dropEmptyNames(card)
	return card, nil
}

// dropEmptyNames removes the placeholder FN and N lines written for
// contacts without a name.
func dropEmptyNames(card vcard.Card) {
	var fns []*vcard.Field
	for _, f := range card[vcard.FieldFormattedName] {
		if strings.TrimSpace(f.Value) != "" {
			fns = append(fns, f)
		}
	}
	setOrDelete(card, vcard.FieldFormattedName, fns)

	var ns []*vcard.Field
	for _, f := range card[vcard.FieldName] {
		if strings.Trim(f.Value, "; ") != "" {
			ns = append(ns, f)
		}
	}
	setOrDelete(card, vcard.FieldName, ns)
}

func setOrDelete(card vcard.Card, key string, fields []*vcard.Field) {
	if len(fields) == 0 {
		delete(card, key)
		return
	}
	card[key] = fields
}
