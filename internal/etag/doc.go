// Package etag derives identifiers for Abook entries: a UID built from the
// section number and host name, and a content ETag that changes whenever
// any field of the entry changes.
package etag
