package fbsrvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgRepo is the Postgres-backed Repo. Every operation acquires a connection
// from the pool, runs inside a transaction and releases the connection on
// all exit paths (pgx.BeginFunc commits on nil, rolls back on error).
type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *pgRepo {
	return &pgRepo{pool: pool}
}

// SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// EnsureSchema idempotently creates the feedback table and its user_id
// index. Safe to call on every startup.
func (r *pgRepo) EnsureSchema(ctx context.Context) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS feedback (
				id BIGSERIAL PRIMARY KEY,
				username TEXT NOT NULL,
				user_id BIGINT UNIQUE NOT NULL
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create feedback table: %w", err)
		}
		_, err = tx.Exec(ctx, `
			CREATE INDEX IF NOT EXISTS idx_feedback_user_id ON feedback(user_id)
		`)
		if err != nil {
			return fmt.Errorf("failed to create user id index: %w", err)
		}
		return nil
	})
}

// Insert implements Repo
func (r *pgRepo) Insert(ctx context.Context, username string, userID int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO feedback (username, user_id)
			VALUES ($1, $2)
		`, username, userID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return ErrDuplicateUserID
			}
			return fmt.Errorf("failed to insert submission: %w", err)
		}
		return nil
	})
}

// Count implements Repo
func (r *pgRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count submissions: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecent implements Repo
func (r *pgRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	var subms []Submission
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT id, username, user_id
			FROM feedback
			ORDER BY id DESC
			LIMIT $1
		`, limit)
		if err != nil {
			return fmt.Errorf("failed to query submissions: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var subm Submission
			if err := rows.Scan(&subm.ID, &subm.Username, &subm.UserID); err != nil {
				return fmt.Errorf("failed to scan submission: %w", err)
			}
			subms = append(subms, subm)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return subms, nil
}
