// Package vcf reads and writes vCard text (.vcf files).
//
// Parsing is a single linear pass. A line scanner unfolds continuation
// lines (a leading space or tab joins a physical line to the previous one),
// remembers where every logical line started and splits the input into
// BEGIN:VCARD / END:VCARD blocks. Each block is then decoded into a
// vcard.Card with github.com/emersion/go-vcard, after properties this
// package cannot represent have been dropped with a warning.
//
// Writing emits vCard 3.0 with CRLF line endings. FN and N are always
// present (synthesized from each other when one is missing), the other
// properties follow in name order, and every line longer than 75 octets is
// folded.
package vcf
