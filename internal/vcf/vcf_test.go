package vcf_test

import (
	"strings"
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/require"

	"abook/internal/domain"
	"abook/internal/vcf"
)

type collector []domain.UnsupportedFieldWarning

func (c *collector) Warn(w domain.UnsupportedFieldWarning) { *c = append(*c, w) }

func TestParse_Basic(t *testing.T) {
	input := "BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN:John Smith\r\n" +
		"N:Smith;John;;;\r\n" +
		"EMAIL:a@example.com\r\n" +
		"EMAIL:b@example.com\r\n" +
		"TEL;TYPE=work:555\r\n" +
		"X-ABOOK-CUSTOM1:blue\r\n" +
		"END:VCARD\r\n"

	cards, err := vcf.Parse(input, nil)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	c := cards[0]
	require.Equal(t, "John Smith", c.PreferredValue(vcard.FieldFormattedName))
	require.Equal(t, []string{"a@example.com", "b@example.com"}, c.Values(vcard.FieldEmail))
	require.Equal(t, "Smith", c.Name().FamilyName)
	require.Equal(t, "blue", c.Value("X-ABOOK-CUSTOM1"))
	require.Nil(t, c[vcard.FieldVersion])
}

func TestParse_UnknownPropertyWarns(t *testing.T) {
	input := "BEGIN:VCARD\nFN:A\nGEO:1;2\nX-CUSTOM:kept\nEND:VCARD\n"
	var warns collector
	cards, err := vcf.Parse(input, &warns)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Nil(t, cards[0]["GEO"])
	require.Equal(t, "kept", cards[0].Value("X-CUSTOM"))

	require.Len(t, warns, 1)
	require.Equal(t, "GEO", warns[0].Property)
	require.Equal(t, 3, warns[0].Line)
}

func TestParse_Unfold(t *testing.T) {
	input := "BEGIN:VCARD\r\nNOTE:abc\r\n def\r\n\tghi\r\nEND:VCARD\r\n"
	cards, err := vcf.Parse(input, nil)
	require.NoError(t, err)
	require.Equal(t, "abcdefghi", cards[0].Value(vcard.FieldNote))
}

func TestParse_FormatErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"unterminated", "BEGIN:VCARD\nFN:A\n", 1},
		{"unterminated second", "BEGIN:VCARD\nFN:A\nEND:VCARD\nBEGIN:VCARD\nFN:B\n", 4},
		{"nested", "BEGIN:VCARD\nBEGIN:VCARD\nEND:VCARD\n", 2},
		{"stray end", "END:VCARD\n", 1},
		{"outside block", "FN:A\n", 1},
		{"no colon", "BEGIN:VCARD\nFN A\nEND:VCARD\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vcf.Parse(tc.input, nil)
			var fe *domain.FormatError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, tc.line, fe.Line, "%v", err)
		})
	}
}

func TestSerialize_SynthesizesNames(t *testing.T) {
	c := make(vcard.Card)
	c.Add(vcard.FieldFormattedName, &vcard.Field{Value: "Mary Ann Jones"})
	c.Add(vcard.FieldEmail, &vcard.Field{Value: "m@example.com"})

	text, err := vcf.Serialize([]vcard.Card{c})
	require.NoError(t, err)
	require.Equal(t, "BEGIN:VCARD\r\n"+
		"VERSION:3.0\r\n"+
		"FN:Mary Ann Jones\r\n"+
		"N:Jones;Mary Ann;;;\r\n"+
		"EMAIL:m@example.com\r\n"+
		"END:VCARD\r\n", text)

	n := make(vcard.Card)
	n.SetName(&vcard.Name{GivenName: "Bob", FamilyName: "Stone"})
	text, err = vcf.Serialize([]vcard.Card{n})
	require.NoError(t, err)
	require.Contains(t, text, "\r\nFN:Bob Stone\r\n")
}

func TestSerialize_FoldsLongLines(t *testing.T) {
	long := strings.Repeat("0123456789", 20)
	c := make(vcard.Card)
	c.Add(vcard.FieldFormattedName, &vcard.Field{Value: "A"})
	c.Add(vcard.FieldNote, &vcard.Field{Value: long})

	text, err := vcf.Serialize([]vcard.Card{c})
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n") {
		require.LessOrEqual(t, len(line), vcf.MaxLineOctets, line)
	}

	cards, err := vcf.Parse(text, nil)
	require.NoError(t, err)
	require.Equal(t, long, cards[0].Value(vcard.FieldNote))
}

func TestSerialize_FoldKeepsUTF8(t *testing.T) {
	long := strings.Repeat("é", 60)
	c := make(vcard.Card)
	c.Add(vcard.FieldFormattedName, &vcard.Field{Value: long})

	text, err := vcf.Serialize([]vcard.Card{c})
	require.NoError(t, err)
	for _, line := range strings.Split(text, "\r\n") {
		require.True(t, strings.ToValidUTF8(line, "?") == line, "split inside a rune: %q", line)
	}

	cards, err := vcf.Parse(text, nil)
	require.NoError(t, err)
	require.Equal(t, long, cards[0].PreferredValue(vcard.FieldFormattedName))
}

func TestRoundTrip(t *testing.T) {
	c := make(vcard.Card)
	c.Add(vcard.FieldFormattedName, &vcard.Field{Value: "John Smith"})
	c.SetName(&vcard.Name{FamilyName: "Smith", GivenName: "John"})
	c.Add(vcard.FieldEmail, &vcard.Field{Value: "a@example.com"})
	c.Add(vcard.FieldEmail, &vcard.Field{Value: "b@example.com"})
	c.Add(vcard.FieldTelephone, &vcard.Field{Value: "555", Params: vcard.Params{vcard.ParamType: {"cell"}}})
	c.Add(vcard.FieldNote, &vcard.Field{Value: "line one\nline two, with comma; and semicolon"})
	c.Add(vcard.FieldCategories, &vcard.Field{Value: "friends,work"})
	c.AddAddress(&vcard.Address{StreetAddress: "123 Main St", Locality: "Springfield", PostalCode: "00000"})

	text, err := vcf.Serialize([]vcard.Card{c, c})
	require.NoError(t, err)
	require.Contains(t, text, "ADR:;;123 Main St;Springfield;;00000;\r\n")
	require.Contains(t, text, "TEL;TYPE=cell:555\r\n")
	require.Contains(t, text, "CATEGORIES:friends,work\r\n")

	cards, err := vcf.Parse(text, nil)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	got := cards[0]
	require.Equal(t, []string{"a@example.com", "b@example.com"}, got.Values(vcard.FieldEmail))
	require.Equal(t, c.Value(vcard.FieldNote), got.Value(vcard.FieldNote))
	require.Equal(t, "friends,work", got.Value(vcard.FieldCategories))
	require.Equal(t, "cell", got.Get(vcard.FieldTelephone).Params.Get(vcard.ParamType))

	addr := got.Address()
	require.NotNil(t, addr)
	require.Equal(t, "123 Main St", addr.StreetAddress)
	require.Equal(t, "Springfield", addr.Locality)
	require.Equal(t, "00000", addr.PostalCode)
}

func TestParse_EmptyNamesDropped(t *testing.T) {
	cards, err := vcf.Parse("BEGIN:VCARD\nFN:\nN:;;;;\nEMAIL:x@example.com\nEND:VCARD\n", nil)
	require.NoError(t, err)
	require.Nil(t, cards[0][vcard.FieldFormattedName])
	require.Nil(t, cards[0][vcard.FieldName])
}

func TestSplitName(t *testing.T) {
	require.Equal(t, &vcard.Name{}, vcf.SplitName("  "))
	require.Equal(t, &vcard.Name{FamilyName: "Cher"}, vcf.SplitName("Cher"))
	require.Equal(t, &vcard.Name{GivenName: "Mary Ann", FamilyName: "Jones"}, vcf.SplitName("Mary Ann Jones"))
}

func TestStructuredComponents(t *testing.T) {
	v := vcf.JoinStructured("", "", "1 Main St; Apt 4", "Town, North", "", "12345", "US")
	require.Equal(t, `;;1 Main St\; Apt 4;Town\, North;;12345;US`, v)
	require.Equal(t,
		[]string{"", "", "1 Main St; Apt 4", "Town, North", "", "12345", "US"},
		vcf.SplitStructured(v, 7))

	require.Equal(t, []string{"a", "", "", ""}, vcf.SplitStructured("a", 4))
	require.Equal(t, []string{`back\slash`, "two\nlines"}, vcf.SplitStructured(`back\\slash;two\nlines`, 2))
	require.Equal(t, `back\\slash;two\nlines`, vcf.JoinStructured(`back\slash`, "two\nlines"))
}

func TestParse_StructuredKeepsEscapedSeparators(t *testing.T) {
	text := "BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN:Pat O'Brien\r\n" +
		`N:O\;Brien;Pat\, Jr;;;` + "\r\n" +
		`ADR;TYPE=home:;;1 Main St\; Apt 4;Town;;12345;US` + "\r\n" +
		"END:VCARD\r\n"
	cards, err := vcf.Parse(text, nil)
	require.NoError(t, err)

	c := cards[0]
	require.Equal(t, []string{"O;Brien", "Pat, Jr", "", "", ""}, vcf.SplitStructured(c.Value(vcard.FieldName), 5))
	addr := vcf.SplitStructured(c.Value(vcard.FieldAddress), 7)
	require.Equal(t, "1 Main St; Apt 4", addr[2])
	require.Equal(t, "Town", addr[3])
	require.Equal(t, "US", addr[6])

	out, err := vcf.Serialize(cards)
	require.NoError(t, err)
	require.Contains(t, out, "\r\n"+`N:O\;Brien;Pat\, Jr;;;`+"\r\n")
	require.Contains(t, out, "\r\n"+`ADR;TYPE=home:;;1 Main St\; Apt 4;Town;;12345;US`+"\r\n")
}
