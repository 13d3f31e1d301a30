// Package commands defines the abook2vcf CLI.
//
// The root command loads the settings and abookrc, decodes the whole
// addressbook and only then writes vCards, so a malformed input never
// leaves a partial output file. With --uids it lists "UID ETAG" pairs
// instead of converting; --uid limits the output to the named entries.
package commands
