package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/filologbot/filolog/internal/dbx"
)

// PostgresRepository implements Repository over PostgreSQL (pgx stdlib
// driver). Used for server deployments; semantics match SQLiteRepository.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, userID int64, command, queryText, responseText string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_queries (user_id, command, query_text, response_text, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			userID, command, queryText, truncateRunes(responseText, ResponseMaxLen), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert query record: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM user_queries WHERE user_id = $1 AND created_at >= $2`,
		userID, since.UTC()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count query records: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Recent(ctx context.Context, userID int64, limit int) ([]Query, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, command, query_text, response_text, created_at
		FROM user_queries WHERE user_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2`,
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

func (r *PostgresRepository) ClearAll(ctx context.Context, userID int64) (int64, error) {
	var deleted int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM user_queries WHERE user_id = $1`, userID)
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
