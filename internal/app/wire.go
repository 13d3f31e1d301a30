package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"abook/internal/config"
	"abook/internal/domain"
	"abook/internal/mapping"
	"abook/internal/services/convert"
	"abook/internal/store"
)

// Wire bundles the settings, stores and services for one command run.
type Wire struct {
	Settings *config.Settings
	Fields   domain.FieldConfig
	Files    *store.FileStore
	Outputs  domain.OutputStore
	Books    *store.BookStore
	Photos   *store.PhotoDir // nil with NoPhoto
	Mapper   *mapping.Mapper
	Convert  *convert.Service
	Warnings *Warnings

	// Standard streams used for "-"; commands point them at cobra's.
	Stdin  io.Reader
	Stdout io.Writer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.Home = dir
	}
	if cfg.SettingsPath == "" {
		cfg.SettingsPath = config.DefaultSettingsPath(cfg.Home)
	}
	SetupLogging(cfg.Verbose, cfg.Quiet)

	settings, err := config.LoadSettings(config.ExpandHome(cfg.SettingsPath, cfg.Home), cfg.Home)
	if err != nil {
		return nil, err
	}
	if cfg.Abookrc != "" {
		settings.Abookrc = config.ExpandHome(cfg.Abookrc, cfg.Home)
	}
	if cfg.PhotoDir != "" {
		settings.PhotoDir = config.ExpandHome(cfg.PhotoDir, cfg.Home)
	}
	if cfg.FQDN != "" {
		settings.FQDN = cfg.FQDN
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	fields, err := config.LoadFieldConfig(settings.Abookrc)
	if err != nil {
		return nil, err
	}
	log.Debugf("field config from %s: %d custom fields, %d views", settings.Abookrc, len(fields.Custom), len(fields.Views))

	fqdn, err := resolveFQDN(settings.FQDN)
	if err != nil {
		return nil, err
	}

	files := store.NewFileStore(0o644)
	mapper := mapping.New(fields, mapping.WithExtensionPrefix(settings.ExtensionPrefix))
	warnings := &Warnings{}

	var (
		photos     *store.PhotoDir
		photoStore domain.PhotoStore
	)
	if !cfg.NoPhoto {
		dir := settings.PhotoDir
		if dir == "" {
			dir = filepath.Join(filepath.Dir(settings.Addressbook), "photo")
		}
		photos = store.NewPhotoDir(dir, files)
		photoStore = photos
	}

	return &Wire{
		Settings: settings,
		Fields:   fields,
		Files:    files,
		Outputs:  files,
		Books:    store.NewBookStore(files, fields),
		Photos:   photos,
		Mapper:   mapper,
		Convert:  convert.New(mapper, photoStore, fqdn, warnings, newProgress(cfg.Progress)),
		Warnings: warnings,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}, nil
}

func resolveFQDN(fqdn string) (string, error) {
	if fqdn != "" {
		return fqdn, nil
	}
	host, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("app: host name for UIDs: %w", err)
	}
	return host, nil
}
