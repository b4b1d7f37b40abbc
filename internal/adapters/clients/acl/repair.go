package acl

import "strings"

// Repair fixes escape sequences that are invalid JSON but known to appear in
// provider responses. Every backslash-apostrophe pair becomes a bare
// apostrophe; nothing else is touched.
//
// Replacing `\\'` leaves a fresh pair behind, so passes repeat until none
// remain. The output never contains the pair and a second call is a no-op.
func Repair(raw string) string {
	for strings.Contains(raw, escapedApostrophe) {
		raw = strings.ReplaceAll(raw, escapedApostrophe, "'")
	}

	return raw
}

const escapedApostrophe = `\'`
