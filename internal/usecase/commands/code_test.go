//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code-lookup/internal/domain/code"
	reqdto "code-lookup/internal/handler/dto/request"
	"code-lookup/internal/infra"
	sqlc "code-lookup/internal/infra/sqlc/generated"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/usecase/commands"
	"code-lookup/internal/usecase/shared"
	sharedmock "code-lookup/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	uow  *sharedmock.MockUnitOfWork
	tx   *sharedmock.MockTx
	repo *sharedmock.MockCodeRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:  sharedmock.NewMockUnitOfWork(ctrl),
		tx:   sharedmock.NewMockTx(ctrl),
		repo: sharedmock.NewMockCodeRepository(ctrl),
	}
	f.tx.EXPECT().Codes().Return(f.repo).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

// expectWithin runs the callback against the mock tx like the real UoW would.
func (f *fixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func TestCodeCommands_AddCode(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		req       reqdto.AddCodeRequest
		setupMock func(*fixture)
		wantErr   error
	}{
		{
			name: "success: code is normalized and message trimmed",
			req:  reqdto.AddCodeRequest{Code: " promo1 ", Message: "  hello "},
			setupMock: func(f *fixture) {
				f.expectWithin()
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, rec *code.Record) (*code.Record, error) {
						assert.Equal(t, code.Code("PROMO1"), rec.Code())
						assert.Equal(t, code.Message("hello"), rec.Message())
						return code.ReconstructRecord(1, rec.Code(), rec.Message(), time.Now()), nil
					})
			},
		},
		{
			name:      "error: empty code",
			req:       reqdto.AddCodeRequest{Code: "   ", Message: "hello"},
			setupMock: func(f *fixture) {},
			wantErr:   errs.ErrInvalidInput,
		},
		{
			name:      "error: empty message",
			req:       reqdto.AddCodeRequest{Code: "PROMO1", Message: "\t"},
			setupMock: func(f *fixture) {},
			wantErr:   errs.ErrInvalidInput,
		},
		{
			name: "error: duplicate code is a conflict",
			req:  reqdto.AddCodeRequest{Code: "promo1", Message: "hello"},
			setupMock: func(f *fixture) {
				f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("code already exists", errors.New("23505"), infra.KindDuplicateKey))
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "error: database failure",
			req:  reqdto.AddCodeRequest{Code: "promo1", Message: "hello"},
			setupMock: func(f *fixture) {
				f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setupMock(f)

			err := commands.NewCodeCommands(f.uow).AddCode(ctx, tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCodeCommands_AddCode_ConflictIsNotInvalidInput(t *testing.T) {
	f := newFixture(t)
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("code already exists", nil, infra.KindDuplicateKey))

	err := commands.NewCodeCommands(f.uow).AddCode(context.Background(), reqdto.AddCodeRequest{Code: "A", Message: "b"})

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrCodeAlreadyExists))
	assert.False(t, errs.Is(err, errs.ErrInvalidInput))
}

func TestCodeCommands_DeleteCode(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		removed   bool
		repoErr   error
		wantError bool
	}{
		{name: "success: existing record removed", removed: true},
		{name: "success: missing id is a no-op", removed: false},
		{name: "error: database failure", repoErr: assert.AnError, wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectWithin()
			f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(42)).Return(tc.removed, tc.repoErr)

			err := commands.NewCodeCommands(f.uow).DeleteCode(ctx, 42)

			if tc.wantError {
				require.Error(t, err)
				assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
				return
			}
			assert.NoError(t, err)
		})
	}
}
