//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertCode stores a record directly, bypassing normalization.
func InsertCode(t *testing.T, db DBLike, code, message string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO codes (code, message) VALUES ($1, $2) RETURNING id", code, message).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountCodes(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM codes").Scan(&n)
	require.NoError(t, err)
	return n
}

// MessageOf returns the stored message for an exact code, or "" when absent.
func MessageOf(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var msg string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT message FROM codes WHERE code = $1), '')", code).Scan(&msg)
	require.NoError(t, err)
	return msg
}

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE codes RESTART IDENTITY")
	return err
}
