package app

import (
	"os"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"
	"github.com/schollz/progressbar/v3"

	"abook/internal/domain"
)

// LogSystem is the go-log subsystem every package logs under.
const LogSystem = "abook"

var log = logging.Logger(LogSystem)

// ProgressThreshold is the smallest contact count that gets a progress bar.
const ProgressThreshold = 50

// SetupLogging sets the log level from the verbosity flags. Warnings are
// shown by default.
func SetupLogging(verbose, quiet bool) {
	lvl := "warn"
	switch {
	case quiet:
		lvl = "error"
	case verbose:
		lvl = "debug"
	}
	_ = logging.SetLogLevel(LogSystem, lvl)
}

// Warnings logs unsupported-field warnings and counts them.
type Warnings struct {
	n atomic.Int64
}

// Warn logs w at warning level.
func (c *Warnings) Warn(w domain.UnsupportedFieldWarning) {
	c.n.Add(1)
	if w.Line > 0 {
		log.Warnw("field not converted", "property", w.Property, "line", w.Line, "reason", w.Reason)
		return
	}
	log.Warnw("field not converted", "property", w.Property, "reason", w.Reason)
}

// Count returns how many warnings were reported.
func (c *Warnings) Count() int { return int(c.n.Load()) }

// newProgress returns a progress factory. Small runs and runs without a
// terminal get no bar.
func newProgress(enabled bool) func(total int) domain.Progress {
	return func(total int) domain.Progress {
		if !enabled || total < ProgressThreshold {
			return nil
		}
		return progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
}

var _ domain.WarningSink = (*Warnings)(nil)
