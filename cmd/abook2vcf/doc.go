// Command abook2vcf converts an Abook addressbook to vCard 3.0.
//
// Usage
//
//	abook2vcf [flags] [infile [outfile]]
//
// infile defaults to the addressbook named in the settings file, outfile
// to standard output. "-" names standard input or output.
package main
