// Package abook reads and writes the Abook addressbook format.
//
// An addressbook is an INI-like text file:
//
//	# abook addressbook file
//
//	[format]
//	program=abook
//	version=0.6.1
//
//	[0]
//	name=Jane Doe
//	email=jane@example.org,jd@example.com
//	city=Springfield
//
// Every contact lives in a section named by its numeric ID; `[format]`
// carries file metadata and is not a contact. `email` and `groups` hold
// comma-separated lists. Values spanning several lines are written as
// tab-indented continuation lines.
//
// Decoding is a single pass over the lines with two states (outside or
// inside a section). Any malformed line aborts the whole file with a
// *domain.FormatError carrying the line number. Encoding is deterministic:
// entries keep their order and fields follow domain.FieldConfig.Order.
package abook
