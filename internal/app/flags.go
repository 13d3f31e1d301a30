package app

import (
	"github.com/spf13/pflag"
)

// Flags are the options shared by both converters.
type Flags struct {
	Config
	NoColor     bool
	PrintConfig bool
}

// Bind registers the shared flags on fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.SettingsPath, "settings", "", "settings file (default ~/.abook/abookconv.yaml)")
	fs.StringVar(&f.Abookrc, "abookrc", "", "abook configuration declaring custom fields and views")
	fs.StringVar(&f.PhotoDir, "photo-dir", "", "directory holding <name>.jpeg photos")
	fs.StringVar(&f.FQDN, "fqdn", "", "domain used in generated UIDs (default host name)")
	fs.BoolVar(&f.NoPhoto, "no-photo", false, "do not read or write photos")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "log debug details")
	fs.BoolVarP(&f.Quiet, "quiet", "q", false, "log errors only")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable coloured status output")
	fs.BoolVar(&f.PrintConfig, "print-config", false, "print the effective field configuration and exit")
}
