package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/filologbot/filolog/internal/dbx"
)

// SQLiteRepository implements Repository over an embedded SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Append writes one record inside its own transaction. Timestamps are
// stored in UTC so windowed comparisons are timezone-independent.
func (r *SQLiteRepository) Append(ctx context.Context, userID int64, command, queryText, responseText string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_queries (user_id, command, query_text, response_text, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			userID, command, queryText, truncateRunes(responseText, ResponseMaxLen), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert query record: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM user_queries WHERE user_id = ? AND created_at >= ?`,
		userID, since.UTC()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count query records: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, userID int64, limit int) ([]Query, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, command, query_text, response_text, created_at
		FROM user_queries WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select query records: %w", err)
	}
	defer rows.Close()

	var result []Query
	for rows.Next() {
		var q Query
		if err := rows.Scan(&q.ID, &q.UserID, &q.Command, &q.QueryText, &q.ResponseText, &q.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearAll deletes the user's records transactionally and reports the count.
func (r *SQLiteRepository) ClearAll(ctx context.Context, userID int64) (int64, error) {
	var deleted int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM user_queries WHERE user_id = ?`, userID)
		if err != nil {
			return fmt.Errorf("failed to delete query records: %w", err)
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
