// Package ledger persists the append-only per-user query history backing
// rate limiting and the history command.
package ledger

import "time"

// ResponseMaxLen is the stored response size cap, in runes. Longer responses
// are truncated at write time, never rejected.
const ResponseMaxLen = 500

// Query is one recorded user request and the response it produced.
// Records are immutable once written: they are only read back or removed in
// bulk by a per-user clear.
type Query struct {
	ID           int64
	UserID       int64
	Command      string
	QueryText    string
	ResponseText string
	CreatedAt    time.Time
}

// truncateRunes caps s at n runes. Byte-level slicing would corrupt
// Cyrillic text, so the cut is made on rune boundaries.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
