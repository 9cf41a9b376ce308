package shared

import (
	"context"

	"code-lookup/internal/domain/code"
	sqlc "code-lookup/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Codes() CodeRepository
	DB() sqlc.DBTX
}

type CodeRepository interface {
	// Create fails with an infra.KindDuplicateKey error when the code exists.
	Create(ctx context.Context, tx sqlc.DBTX, rec *code.Record) (*code.Record, error)
	// Delete reports whether a row was removed; a missing id is not an error.
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error)
}
