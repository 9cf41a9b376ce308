package converter

import (
	"code-lookup/internal/domain/code"
	sqlc "code-lookup/internal/infra/sqlc/generated"
	"code-lookup/internal/pkg/pgconv"
)

func RecordToCreateParams(r *code.Record) sqlc.CreateCodeParams {
	return sqlc.CreateCodeParams{
		Code:    r.Code().String(),
		Message: r.Message().String(),
	}
}

func RecordFromRow(row sqlc.Codes) *code.Record {
	return code.ReconstructRecord(
		row.ID,
		code.Code(row.Code),
		code.Message(row.Message),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
