package abook

import (
	"fmt"

	"abook/internal/domain"
)

// Program and Version are written to the [format] section.
const (
	Program = "abook"
	Version = "0.6.1"
)

// Entry is one numbered section of an addressbook.
type Entry struct {
	ID     int
	Record domain.Record
}

// Book is a decoded addressbook.
type Book struct {
	Program string
	Version string
	Entries []Entry
}

// NewBook numbers records from 0 in order.
func NewBook(records []domain.Record) *Book {
	b := &Book{Program: Program, Version: Version}
	b.Append(records...)
	return b
}

// NextID returns one past the highest ID in use.
func (b *Book) NextID() int {
	next := 0
	for _, e := range b.Entries {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

// Append adds records after the highest existing ID.
func (b *Book) Append(records ...domain.Record) {
	id := b.NextID()
	for _, r := range records {
		b.Entries = append(b.Entries, Entry{ID: id, Record: r})
		id++
	}
}

// Records returns the contacts in file order.
func (b *Book) Records() []domain.Record {
	out := make([]domain.Record, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Record
	}
	return out
}

// Find returns the entry with the given ID.
func (b *Book) Find(id int) (Entry, bool) {
	if i := b.index(id); i >= 0 {
		return b.Entries[i], true
	}
	return Entry{}, false
}

// Replace swaps the record of entry id, keeping its ID and position.
func (b *Book) Replace(id int, r domain.Record) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("abook: no entry with ID %d", id)
	}
	b.Entries[i].Record = r
	return nil
}

// Remove deletes entry id. The other entries keep their IDs.
func (b *Book) Remove(id int) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("abook: no entry with ID %d", id)
	}
	b.Entries = append(b.Entries[:i], b.Entries[i+1:]...)
	return nil
}

func (b *Book) index(id int) int {
	for i, e := range b.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
