package interfaces

import (
	"io"

	domaintypes "abook/internal/domain/types"
)

// PhotoStore reads and writes contact photos kept next to the addressbook.
type PhotoStore interface {
	// LoadPhoto returns the JPEG for name; ok is false when there is none.
	LoadPhoto(name string) (data []byte, ok bool, err error)
	// SavePhoto stores data as <name>.<ext>. It returns ok=false without an
	// error when the photo directory does not exist.
	SavePhoto(name, ext string, data []byte) (ok bool, err error)
}

// OutputStore opens output destinations that are committed only on
// success.
type OutputStore interface {
	WriteFile(path string, write func(w io.Writer) error) error
}

// Progress is advanced once per converted contact.
type Progress interface {
	Add(n int) error
	Finish() error
}

// WarningSink receives non-fatal conversion warnings.
type WarningSink interface {
	Warn(w domaintypes.UnsupportedFieldWarning)
}
