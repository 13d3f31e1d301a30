package store_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"abook/internal/abook"
	"abook/internal/domain"
	"abook/internal/store"
)

func TestWriteFile_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.vcf")
	fs := store.NewFileStore(0)

	boom := errors.New("boom")
	err := fs.WriteFile(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, "partial"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "output file exists after failed write")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "temp files left behind")
}

func TestWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	fs := store.NewFileStore(0o600)
	require.NoError(t, fs.WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	}))
	got, err := fs.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestReadFile_MissingIsIOError(t *testing.T) {
	_, err := store.NewFileStore(0).ReadFile(filepath.Join(t.TempDir(), "nope"))
	var ioErr *domain.IOError
	require.ErrorAs(t, err, &ioErr)
	require.True(t, store.IsNotExist(err))
}

func TestBookStore_LoadSaveAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook")
	books := store.NewBookStore(store.NewFileStore(0), domain.DefaultFieldConfig())

	b, err := books.Load(path)
	require.NoError(t, err, "load missing book")
	require.Empty(t, b.Entries)

	b.Append(domain.Record{domain.FieldName: {"A"}})
	require.NoError(t, books.Save(path, b))

	b, err = books.Load(path)
	require.NoError(t, err)
	b.Append(domain.Record{domain.FieldName: {"B"}})
	require.NoError(t, books.Save(path, b))

	b, err = books.Load(path)
	require.NoError(t, err)
	require.Len(t, b.Entries, 2)
	require.Equal(t, 1, b.Entries[1].ID)
	require.Equal(t, "B", b.Entries[1].Record.Get(domain.FieldName))
	require.Equal(t, abook.Program, b.Program)
}

func TestBookStore_MalformedNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook")
	require.NoError(t, os.WriteFile(path, []byte("[x]\nname=A\n"), 0o600))

	_, err := store.NewBookStore(store.NewFileStore(0), domain.DefaultFieldConfig()).Load(path)
	var fe *domain.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, path, fe.File)
	require.Equal(t, 1, fe.Line)
}

func TestPhotoDir(t *testing.T) {
	fs := store.NewFileStore(0)

	missing := store.NewPhotoDir(filepath.Join(t.TempDir(), "photo"), fs)
	ok, err := missing.SavePhoto("A", "jpeg", []byte{1})
	require.NoError(t, err)
	require.False(t, ok, "missing dir is skipped silently")

	dir := t.TempDir()
	photos := store.NewPhotoDir(dir, fs)
	ok, err = photos.SavePhoto("Jane/Doe", "JPG", []byte{1, 2, 3})
	require.NoError(t, err)
	require.True(t, ok)
	_, err = os.Stat(filepath.Join(dir, "Jane_Doe.jpeg"))
	require.NoError(t, err)

	data, ok, err := photos.LoadPhoto("Jane/Doe")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, data, 3)

	_, ok, _ = photos.LoadPhoto("Nobody")
	require.False(t, ok)
}
