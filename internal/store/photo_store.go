package store

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"abook/internal/domain"
)

// PhotoDir keeps contact photos as <name>.<ext> files.
type PhotoDir struct {
	dir   string
	files *FileStore
}

// NewPhotoDir returns a PhotoDir rooted at dir.
func NewPhotoDir(dir string, files *FileStore) *PhotoDir {
	return &PhotoDir{dir: dir, files: files}
}

// Dir returns the directory photos live in.
func (p *PhotoDir) Dir() string { return p.dir }

// LoadPhoto returns <dir>/<name>.jpeg if it exists.
func (p *PhotoDir) LoadPhoto(name string) ([]byte, bool, error) {
	if p.dir == "" || name == "" {
		return nil, false, nil
	}
	b, err := p.files.ReadFile(p.path(name, "jpeg"))
	if err != nil {
		if IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// SavePhoto writes data to <dir>/<name>.<ext>. When the directory does not
// exist nothing is written and ok is false.
func (p *PhotoDir) SavePhoto(name, ext string, data []byte) (bool, error) {
	if p.dir == "" || name == "" {
		return false, nil
	}
	st, err := os.Stat(p.dir)
	if err != nil || !st.IsDir() {
		return false, nil
	}
	err = p.files.WriteFile(p.path(name, ext), func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
	return err == nil, err
}

func (p *PhotoDir) path(name, ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" || ext == "jpg" {
		ext = "jpeg"
	}
	return filepath.Join(p.dir, safeName(name)+"."+ext)
}

// safeName keeps a contact name usable as a single path element.
func safeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "." || name == ".." {
		return "_"
	}
	return name
}

// Compile-time assertion that PhotoDir implements domain.PhotoStore.
var _ domain.PhotoStore = (*PhotoDir)(nil)
