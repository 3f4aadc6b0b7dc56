package ledger

import (
	"context"
	"time"
)

// Repository describes the query ledger operations. Implementations are
// backed by SQLite or PostgreSQL.
//
// Each operation is independently transactional: writes either fully apply
// or roll back. No transaction spans multiple calls: a rate check reading
// the ledger and the subsequent Append are not atomic with each other.
type Repository interface {
	// Append writes one immutable record, truncating responseText to
	// ResponseMaxLen runes first.
	Append(ctx context.Context, userID int64, command, queryText, responseText string) error

	// CountSince counts the user's records with createdAt >= since.
	CountSince(ctx context.Context, userID int64, since time.Time) (int, error)

	// Recent returns up to limit of the user's records, newest first.
	Recent(ctx context.Context, userID int64, limit int) ([]Query, error)

	// ClearAll deletes every record for the user and returns how many were
	// removed (0 if none).
	ClearAll(ctx context.Context, userID int64) (int64, error)
}
