package store

import (
	"bytes"
	"io"

	"abook/internal/abook"
	"abook/internal/domain"
)

// BookStore loads and saves Abook addressbooks.
type BookStore struct {
	files *FileStore
	cfg   domain.FieldConfig
}

// NewBookStore returns a BookStore writing fields in cfg's order.
func NewBookStore(files *FileStore, cfg domain.FieldConfig) *BookStore {
	return &BookStore{files: files, cfg: cfg}
}

// Load reads the addressbook at path. A missing file is an empty book.
func (s *BookStore) Load(path string) (*abook.Book, error) {
	b, err := s.files.ReadFile(path)
	if err != nil {
		if IsNotExist(err) {
			return abook.NewBook(nil), nil
		}
		return nil, err
	}
	book, err := abook.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, domain.WithFile(err, path)
	}
	return book, nil
}

// Save replaces the addressbook at path with b.
func (s *BookStore) Save(path string, b *abook.Book) error {
	return s.files.WriteFile(path, func(w io.Writer) error {
		return abook.Encode(w, b, s.cfg)
	})
}
