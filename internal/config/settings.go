package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds tool-level options.
type Settings struct {
	Addressbook     string `yaml:"addressbook"`      // default Abook file
	Abookrc         string `yaml:"abookrc"`          // field/view configuration
	PhotoDir        string `yaml:"photo_dir"`        // empty: "photo" next to the addressbook
	FQDN            string `yaml:"fqdn"`             // empty: host name
	ExtensionPrefix string `yaml:"extension_prefix"` // vCard prefix of Abook-only fields
}

// DefaultSettings returns settings rooted at the user's home directory.
func DefaultSettings(home string) Settings {
	return Settings{
		Addressbook:     filepath.Join(home, ".abook", "addressbook"),
		Abookrc:         filepath.Join(home, ".abook", "abookrc"),
		ExtensionPrefix: "X-ABOOK-",
	}
}

// DefaultSettingsPath is where LoadSettings looks without --settings.
func DefaultSettingsPath(home string) string {
	return filepath.Join(home, ".abook", "abookconv.yaml")
}

// LoadSettings reads path over the defaults. A missing or empty file
// yields the defaults; unknown keys are an error.
func LoadSettings(path, home string) (*Settings, error) {
	s := DefaultSettings(home)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &s, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		// Empty and comment-only files decode to EOF.
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	s.Addressbook = ExpandHome(s.Addressbook, home)
	s.Abookrc = ExpandHome(s.Abookrc, home)
	s.PhotoDir = ExpandHome(s.PhotoDir, home)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that settings are usable.
func (s *Settings) Validate() error {
	if s.Addressbook == "" {
		return errors.New("config: addressbook cannot be empty")
	}
	p := strings.ToUpper(s.ExtensionPrefix)
	if p != "" && !strings.HasPrefix(p, "X-") {
		return fmt.Errorf("config: extension_prefix must start with X-, got %q", s.ExtensionPrefix)
	}
	if strings.ContainsAny(s.FQDN, " \t@") {
		return fmt.Errorf("config: fqdn %q is not a host name", s.FQDN)
	}
	return nil
}

// ExpandHome replaces a leading ~ with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
