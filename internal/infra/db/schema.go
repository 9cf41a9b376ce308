package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	sqlc "code-lookup/internal/infra/sqlc/generated"
	"code-lookup/migrations"

	"github.com/jackc/pgx/v5"
)

// initLockID serializes Initialize across processes sharing one database.
const initLockID int64 = 0x636f646573 // "codes"

type SeedRecord struct {
	Code    string
	Message string
}

// DefaultSeed is inserted when the codes table is empty at startup.
var DefaultSeed = []SeedRecord{
	{Code: "ALPHA-001", Message: "Поздравляем! Ваш промокод: SAVE50"},
	{Code: "BETA-2024", Message: "Добро пожаловать в бета-программу! Ссылка: https://internal.example.com/beta"},
	{Code: "VIP-GOLD", Message: "Вы VIP Gold участник. Встреча в пятницу в 15:00."},
}

type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Initialize creates the schema when absent and seeds an empty table. It is
// safe to call on every start and from concurrently starting processes.
func Initialize(ctx context.Context, pool Beginner, q *sqlc.Queries, seed []SeedRecord) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin init transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback init transaction", "error", rbErr.Error())
		}
	}()

	if _, err = tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", initLockID); err != nil {
		return fmt.Errorf("failed to acquire init lock: %w", err)
	}

	for _, name := range migrations.Files {
		stmt, readErr := fs.ReadFile(migrations.FS, name)
		if readErr != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, readErr)
		}
		if _, err = tx.Exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	if len(seed) > 0 {
		count, countErr := q.CountCodes(ctx, tx)
		if countErr != nil {
			return fmt.Errorf("failed to count codes: %w", countErr)
		}
		if count == 0 {
			for _, r := range seed {
				if _, err = q.CreateCode(ctx, tx, sqlc.CreateCodeParams{Code: r.Code, Message: r.Message}); err != nil {
					return fmt.Errorf("failed to seed code %s: %w", r.Code, err)
				}
			}
			slog.Info("seeded empty codes table", "records", len(seed))
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit init transaction: %w", err)
	}
	return nil
}
