// Package store provides file-based persistence for the converters.
//
// Every output (vCard file, addressbook, photo) is written through a temp
// file in the target directory that replaces the destination only after
// the whole content was written and closed; on any error the temp file is
// removed and the previous destination is left untouched.
//
// The package includes:
//   - FileStore: atomic writes and reads with *domain.IOError errors
//   - BookStore: loading and saving Abook addressbooks
//   - PhotoDir: the photo directory next to the addressbook
package store
