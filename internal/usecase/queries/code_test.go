//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code-lookup/internal/domain/code"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/usecase/queries"
	queriesmock "code-lookup/tests/mock/queries"
	sharedmock "code-lookup/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const clientKey = "203.0.113.7"

func TestLookupQueries_CheckCode(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		rawCode     string
		setupMock   func(*sharedmock.MockRateLimiter, *queriesmock.MockCodeReadStore)
		wantFound   bool
		wantMessage string
		wantErr     error
	}{
		{
			name:    "success: code is normalized before lookup",
			rawCode: "  promo1 ",
			setupMock: func(rl *sharedmock.MockRateLimiter, rs *queriesmock.MockCodeReadStore) {
				rl.EXPECT().Allow(clientKey).Return(true, 0)
				rs.EXPECT().FindMessageByCode(gomock.Any(), code.Code("PROMO1")).Return("hello", true, nil)
			},
			wantFound:   true,
			wantMessage: "hello",
		},
		{
			name:    "success: unknown code is a negative result",
			rawCode: "unknown",
			setupMock: func(rl *sharedmock.MockRateLimiter, rs *queriesmock.MockCodeReadStore) {
				rl.EXPECT().Allow(clientKey).Return(true, 0)
				rs.EXPECT().FindMessageByCode(gomock.Any(), code.Code("UNKNOWN")).Return("", false, nil)
			},
			wantFound: false,
		},
		{
			name:    "error: blank code still consumes an attempt",
			rawCode: "   ",
			setupMock: func(rl *sharedmock.MockRateLimiter, rs *queriesmock.MockCodeReadStore) {
				rl.EXPECT().Allow(clientKey).Return(true, 0)
			},
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:    "error: rate limited before touching the store",
			rawCode: "PROMO1",
			setupMock: func(rl *sharedmock.MockRateLimiter, rs *queriesmock.MockCodeReadStore) {
				rl.EXPECT().Allow(clientKey).Return(false, 42)
			},
			wantErr: errs.ErrRateLimited,
		},
		{
			name:    "error: store failure propagates",
			rawCode: "PROMO1",
			setupMock: func(rl *sharedmock.MockRateLimiter, rs *queriesmock.MockCodeReadStore) {
				rl.EXPECT().Allow(clientKey).Return(true, 0)
				rs.EXPECT().FindMessageByCode(gomock.Any(), code.Code("PROMO1")).
					Return("", false, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := sharedmock.NewMockRateLimiter(ctrl)
			store := queriesmock.NewMockCodeReadStore(ctrl)
			tc.setupMock(limiter, store)

			q := queries.NewLookupQueries(limiter, store)
			result, err := q.CheckCode(ctx, tc.rawCode, clientKey)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, result.Found)
			if tc.wantFound {
				require.NotNil(t, result.Message)
				assert.Equal(t, tc.wantMessage, *result.Message)
			} else {
				assert.Nil(t, result.Message)
			}
		})
	}
}

func TestLookupQueries_CheckCode_RetryHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := sharedmock.NewMockRateLimiter(ctrl)
	store := queriesmock.NewMockCodeReadStore(ctrl)
	limiter.EXPECT().Allow(clientKey).Return(false, 57)

	_, err := queries.NewLookupQueries(limiter, store).CheckCode(context.Background(), "x", clientKey)

	var rlErr *queries.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, 57, rlErr.RetryAfter)
}

func TestCodeQueries_ListCodes(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success: returns views in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		want := []queries.CodeView{
			{ID: 2, Code: "BETA-2024", Message: "b", CreatedAt: createdAt},
			{ID: 1, Code: "ALPHA-001", Message: "a", CreatedAt: createdAt},
		}
		store.EXPECT().List(ctx).Return(want, nil)

		got, err := queries.NewCodeQueries(store).ListCodes(ctx)

		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListCodes() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: empty store yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		store.EXPECT().List(ctx).Return(nil, nil)

		got, err := queries.NewCodeQueries(store).ListCodes(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		store.EXPECT().List(ctx).Return(nil, assert.AnError)

		got, err := queries.NewCodeQueries(store).ListCodes(ctx)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, got)
	})
}
