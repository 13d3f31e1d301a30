// Package convert runs one conversion between an Abook addressbook and
// vCard text.
//
// It ties the codecs and the field mapper together and handles the side
// data of the original format: UIDs built from the section number, photos
// read from or written to the photo directory, and per-contact progress.
// Parsing always completes before anything is written, so malformed input
// never produces output.
package convert
