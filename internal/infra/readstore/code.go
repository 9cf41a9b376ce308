package readstore

import (
	"context"

	"code-lookup/internal/domain/code"
	"code-lookup/internal/infra"
	sqlc "code-lookup/internal/infra/sqlc/generated"
	"code-lookup/internal/pkg/pgconv"
	"code-lookup/internal/usecase/queries"
)

type CodeReadQueries interface {
	GetMessageByCode(ctx context.Context, db sqlc.DBTX, code string) (string, error)
	ListCodes(ctx context.Context, db sqlc.DBTX) ([]sqlc.Codes, error)
}

type CodeReadStore struct {
	queries CodeReadQueries
	db      sqlc.DBTX
}

func NewCodeReadStore(queries CodeReadQueries, db sqlc.DBTX) *CodeReadStore {
	return &CodeReadStore{
		queries: queries,
		db:      db,
	}
}

// FindMessageByCode reports found=false without error when no record matches.
func (r *CodeReadStore) FindMessageByCode(ctx context.Context, c code.Code) (string, bool, error) {
	message, err := r.queries.GetMessageByCode(ctx, r.db, c.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to find code", err)
	}
	return message, true, nil
}

func (r *CodeReadStore) List(ctx context.Context) ([]queries.CodeView, error) {
	rows, err := r.queries.ListCodes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list codes", err)
	}

	views := make([]queries.CodeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCodeView(row))
	}
	return views, nil
}

func toCodeView(row sqlc.Codes) queries.CodeView {
	return queries.CodeView{
		ID:        row.ID,
		Code:      row.Code,
		Message:   row.Message,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
