//go:build unit || e2e

package builder

import (
	"time"

	"code-lookup/internal/domain/code"
	reqdto "code-lookup/internal/handler/dto/request"
	sqlc "code-lookup/internal/infra/sqlc/generated"
	"code-lookup/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CodeBuilder struct {
	ID        int64
	Code      string
	Message   string
	CreatedAt time.Time
}

func NewCodeBuilder() *CodeBuilder {
	return &CodeBuilder{
		ID:        1,
		Code:      "PROMO1",
		Message:   "hello",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CodeBuilder) With(mutate func(*CodeBuilder)) *CodeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CodeBuilder) BuildDomain() (*code.Record, error) {
	return code.NewRecord(b.Code, b.Message)
}

func (b *CodeBuilder) BuildInfra() sqlc.Codes {
	return sqlc.Codes{
		ID:        b.ID,
		Code:      code.Normalize(b.Code),
		Message:   b.Message,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *CodeBuilder) BuildView() queries.CodeView {
	return queries.CodeView{
		ID:        b.ID,
		Code:      code.Normalize(b.Code),
		Message:   b.Message,
		CreatedAt: b.CreatedAt,
	}
}

func (b *CodeBuilder) BuildAddRequest() reqdto.AddCodeRequest {
	return reqdto.AddCodeRequest{
		Code:    b.Code,
		Message: b.Message,
	}
}
