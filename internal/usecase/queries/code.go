package queries

import (
	"context"
	"fmt"

	"code-lookup/internal/domain/code"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/usecase/shared"
)

var ErrCodeRequired = errs.Mark(errs.New("code is required"), errs.ErrInvalidInput)

// RateLimitError is returned by CheckCode when the client exhausted its window.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfter)
}

func (e *RateLimitError) Is(target error) bool {
	return target == errs.ErrRateLimited
}

type LookupQueries interface {
	CheckCode(ctx context.Context, rawCode, clientKey string) (*CheckResult, error)
}

type CodeQueries interface {
	ListCodes(ctx context.Context) ([]CodeView, error)
}

type CodeReadStore interface {
	FindMessageByCode(ctx context.Context, c code.Code) (string, bool, error)
	List(ctx context.Context) ([]CodeView, error)
}

type lookupQueriesImpl struct {
	limiter   shared.RateLimiter
	readStore CodeReadStore
}

func NewLookupQueries(limiter shared.RateLimiter, readStore CodeReadStore) LookupQueries {
	return &lookupQueriesImpl{
		limiter:   limiter,
		readStore: readStore,
	}
}

// CheckCode counts every call against the client's window, including calls
// with a blank code.
func (q *lookupQueriesImpl) CheckCode(ctx context.Context, rawCode, clientKey string) (*CheckResult, error) {
	if ok, retryAfter := q.limiter.Allow(clientKey); !ok {
		return nil, &RateLimitError{RetryAfter: retryAfter}
	}

	c, err := code.NewCode(rawCode)
	if err != nil {
		return nil, ErrCodeRequired
	}

	message, found, err := q.readStore.FindMessageByCode(ctx, c)
	if err != nil {
		return nil, err
	}
	if !found {
		return &CheckResult{Found: false}, nil
	}
	return &CheckResult{Found: true, Message: &message}, nil
}

type codeQueriesImpl struct {
	readStore CodeReadStore
}

func NewCodeQueries(readStore CodeReadStore) CodeQueries {
	return &codeQueriesImpl{
		readStore: readStore,
	}
}

func (q *codeQueriesImpl) ListCodes(ctx context.Context) ([]CodeView, error) {
	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []CodeView{}
	}
	return views, nil
}
