// Command vcf2abook converts vCard files to an Abook addressbook.
//
// Usage
//
//	vcf2abook [flags] [infile [addressbook]]
//
// infile defaults to standard input, addressbook to the one named in the
// settings file. With --append the contacts are added after the existing
// entries instead of replacing them.
package main
