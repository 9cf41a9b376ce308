//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"code-lookup/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	assert.Equal(t, now, TimeFromPgtype(TimeToPgtype(now)))
	assert.True(t, TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(pgx.ErrNoRows, "lookup")))
	assert.False(t, IsNoRows(assert.AnError))
	assert.False(t, IsNoRows(nil))
}
