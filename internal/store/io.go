package store

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/facebookgo/atomicfile"

	"abook/internal/domain"
)

// FileStore reads inputs and writes outputs atomically.
type FileStore struct {
	mode os.FileMode
}

// NewFileStore returns a FileStore creating files with mode.
func NewFileStore(mode os.FileMode) *FileStore {
	if mode == 0 {
		mode = 0o644
	}
	return &FileStore{mode: mode}
}

// ReadFile reads path; a missing file is reported as an *domain.IOError
// wrapping os.ErrNotExist.
func (s *FileStore) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.IOError{Op: "read", Path: path, Err: err}
	}
	return b, nil
}

// WriteFile calls write with a buffered temp file and, if it succeeds,
// replaces path with it. Nothing is left behind on failure.
func (s *FileStore) WriteFile(path string, write func(w io.Writer) error) (err error) {
	f, err := atomicfile.New(path, s.mode)
	if err != nil {
		return &domain.IOError{Op: "create", Path: path, Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = f.Abort()
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	committed = true
	return nil
}

// IsNotExist reports whether err is a missing-file error.
func IsNotExist(err error) bool { return errors.Is(err, os.ErrNotExist) }

// Compile-time assertion that FileStore implements domain.OutputStore.
var _ domain.OutputStore = (*FileStore)(nil)
