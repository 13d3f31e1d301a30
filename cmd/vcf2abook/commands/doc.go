// Package commands defines the vcf2abook CLI.
//
// The root command parses every vCard before touching the addressbook.
// Properties without an Abook field are reported as warnings on standard
// error and the conversion continues. --append, --replace and --remove
// edit an existing addressbook; photos are saved only once it is written.
package commands
