package repository

import (
	"context"

	"code-lookup/internal/domain/code"
	"code-lookup/internal/infra"
	"code-lookup/internal/infra/repository/converter"
	sqlc "code-lookup/internal/infra/sqlc/generated"
)

type CodeWriteQueries interface {
	CreateCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCodeParams) (sqlc.Codes, error)
	DeleteCode(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CodeRepository struct {
	queries CodeWriteQueries
}

func NewCodeRepository(queries CodeWriteQueries) *CodeRepository {
	return &CodeRepository{
		queries: queries,
	}
}

func (r *CodeRepository) Create(ctx context.Context, tx sqlc.DBTX, rec *code.Record) (*code.Record, error) {
	row, err := r.queries.CreateCode(ctx, tx, converter.RecordToCreateParams(rec))
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("code already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create code", err)
	}
	return converter.RecordFromRow(row), nil
}

func (r *CodeRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error) {
	n, err := r.queries.DeleteCode(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete code", err)
	}
	return n > 0, nil
}
