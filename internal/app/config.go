package app

// Config holds runtime wiring options for building the app. Empty values
// fall back to the settings file.
type Config struct {
	Home         string // user home directory, used to expand ~
	SettingsPath string // settings file, e.g. $HOME/.abook/abookconv.yaml
	Abookrc      string // overrides settings.abookrc
	PhotoDir     string // overrides settings.photo_dir
	FQDN         string // overrides settings.fqdn
	NoPhoto      bool   // neither embed nor write photos

	Verbose bool // log at debug level
	Quiet   bool // log errors only

	// Progress shows a progress bar on standard error for long runs.
	Progress bool
}
