package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"abook/internal/config"
	"abook/internal/domain"
)

func TestLoadSettings_Defaults(t *testing.T) {
	home := t.TempDir()
	s, err := config.LoadSettings(config.DefaultSettingsPath(home), home)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".abook", "addressbook"), s.Addressbook)
	require.Equal(t, "X-ABOOK-", s.ExtensionPrefix)
}

func TestLoadSettings_File(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "abookconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addressbook: ~/contacts/book
photo_dir: /srv/photos
fqdn: example.org
`), 0o600))

	s, err := config.LoadSettings(path, home)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "contacts", "book"), s.Addressbook)
	require.Equal(t, "/srv/photos", s.PhotoDir)
	require.Equal(t, "example.org", s.FQDN)
	require.Equal(t, filepath.Join(home, ".abook", "abookrc"), s.Abookrc)
}

func TestLoadSettings_Rejects(t *testing.T) {
	home := t.TempDir()
	for name, body := range map[string]string{
		"unknown key": "adressbook: typo\n",
		"bad prefix":  "extension_prefix: ABOOK-\n",
		"bad fqdn":    "fqdn: a b\n",
		"empty book":  "addressbook: \"\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(home, strings.ReplaceAll(name, " ", "_")+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := config.LoadSettings(path, home)
			require.Error(t, err)
		})
	}
}

func TestParseFieldConfig(t *testing.T) {
	rc := `# abookrc
set autosave=true
field pgpkey = PGP Key
field birthday = Birthday, date
view CONTACT = name, email
view OTHER = pgpkey
view contact = birthday
`
	cfg, err := config.ParseFieldConfig(strings.NewReader(rc))
	require.NoError(t, err)
	require.Equal(t, []domain.CustomField{
		{Name: "pgpkey", Label: "PGP Key", Type: "string"},
		{Name: "birthday", Label: "Birthday", Type: "date"},
	}, cfg.Custom)
	require.Equal(t, []domain.View{
		{Name: "CONTACT", Fields: []domain.Field{"name", "email", "birthday"}},
		{Name: "OTHER", Fields: []domain.Field{"pgpkey"}},
	}, cfg.Views)

	again, err := config.ParseFieldConfig(strings.NewReader(config.String(cfg)))
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestParseFieldConfig_DefaultViews(t *testing.T) {
	cfg, err := config.ParseFieldConfig(strings.NewReader("field\tcustom1 = Shoe size\n"))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultFieldConfig().Views, cfg.Views)
	require.Len(t, cfg.Custom, 1)
}

func TestParseFieldConfig_Errors(t *testing.T) {
	for _, rc := range []string{
		"field name = Name\n",
		"field a = A\nfield a = B\n",
		"field a\n",
		"field a = \n",
		"field a = A, colour\n",
		"view = name\n",
		"view X name\n",
	} {
		_, err := config.ParseFieldConfig(strings.NewReader(rc))
		var fe *domain.FormatError
		require.ErrorAs(t, err, &fe, rc)
	}
}

func TestLoadFieldConfig_Missing(t *testing.T) {
	cfg, err := config.LoadFieldConfig(filepath.Join(t.TempDir(), "abookrc"))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultFieldConfig(), cfg)
}
