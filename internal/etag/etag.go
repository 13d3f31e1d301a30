package etag

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"abook/internal/domain"
)

// size is the number of hash bytes kept (32 hex chars).
const size = 16

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 16 bytes.
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:size])
}

// Of returns the quoted ETag of a record: the fingerprint of its fields in
// cfg's canonical order. Records with equal content share an ETag.
func Of(r domain.Record, cfg domain.FieldConfig) string {
	var sb strings.Builder
	for _, f := range cfg.Order(r) {
		for _, v := range r.Values(f) {
			sb.WriteString(string(f))
			sb.WriteByte('=')
			sb.WriteString(v)
			sb.WriteByte(0)
		}
	}
	return `"` + Fingerprint([]byte(sb.String())) + `"`
}

// UID returns the UID of the Abook entry id on host fqdn. The ID is only
// stable until abook renumbers the file.
func UID(id int, fqdn string) string { return fmt.Sprintf("%d@%s", id, fqdn) }

// ParseUID returns the entry ID of a UID made by UID. Only the part
// before '@' is significant, so UIDs from another host still resolve.
func ParseUID(uid string) (int, error) {
	idPart, _, _ := strings.Cut(strings.TrimSpace(uid), "@")
	id, err := strconv.Atoi(idPart)
	if err != nil || id < 0 || idPart == "" || idPart[0] == '+' {
		return 0, fmt.Errorf("etag: %q is not an Abook UID", uid)
	}
	return id, nil
}
