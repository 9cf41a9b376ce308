//go:build unit

package usecase

import (
	"testing"

	"code-lookup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuthenticator_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		credential string
		wantErr    bool
	}{
		{name: "matching key", key: "s3cret", credential: "s3cret"},
		{name: "wrong key", key: "s3cret", credential: "s3cre", wantErr: true},
		{name: "case differs", key: "s3cret", credential: "S3CRET", wantErr: true},
		{name: "missing credential", key: "s3cret", credential: "", wantErr: true},
		{name: "empty configured key never matches", key: "", credential: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAdminAuthenticator(tt.key).Authenticate(tt.credential)
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrUnauthorized))
				assert.True(t, errs.Is(err, ErrInvalidAdminKey))
				return
			}
			assert.NoError(t, err)
		})
	}
}
