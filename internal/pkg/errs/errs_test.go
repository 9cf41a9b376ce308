//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"code-lookup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both itself and the mark", func(t *testing.T) {
		base := errs.New("code is required")
		marked := errs.Mark(base, errs.ErrInvalidInput)

		assert.True(t, errs.Is(marked, errs.ErrInvalidInput))
		assert.True(t, errs.Is(marked, base))
		assert.False(t, errs.Is(marked, errs.ErrConflict))
	})

	t.Run("wrapping keeps the mark", func(t *testing.T) {
		marked := errs.Mark(errs.New("duplicate code"), errs.ErrConflict)
		wrapped := errs.Wrap(marked, "insert failed")

		assert.True(t, errs.Is(wrapped, errs.ErrConflict))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrUnauthorized, errs.Mark(nil, errs.ErrUnauthorized))
	})

	t.Run("wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errors.New("boom"), "outer")
	lines := errs.ExtractStackLines(err, 2)

	assert.Len(t, lines, 2)
	assert.Nil(t, errs.ExtractStackLines(nil, 5))
}
