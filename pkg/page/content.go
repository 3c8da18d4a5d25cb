// Package page renders the status page from its template and decides whether
// the rendered result needs to be committed.
package page

import "crypto/sha1" // #nosec G505 -- change detection only, not integrity

// SameContent reports whether two byte payloads are identical, by digest.
// Remote content must already be decoded to raw bytes before comparing.
func SameContent(a, b []byte) bool {
	return sha1.Sum(a) == sha1.Sum(b)
}
