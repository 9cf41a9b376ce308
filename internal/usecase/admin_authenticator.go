package usecase

import (
	"crypto/subtle"

	"code-lookup/internal/pkg/errs"
)

var ErrInvalidAdminKey = errs.Mark(errs.New("invalid admin key"), errs.ErrUnauthorized)

// AdminAuthenticator validates the admin credential for middleware
type AdminAuthenticator interface {
	Authenticate(credential string) error
}

type adminAuthenticatorImpl struct {
	key []byte
}

func NewAdminAuthenticator(key string) AdminAuthenticator {
	return &adminAuthenticatorImpl{
		key: []byte(key),
	}
}

// Authenticate rejects an empty credential even when the configured key is empty.
func (a *adminAuthenticatorImpl) Authenticate(credential string) error {
	if credential == "" || len(a.key) == 0 {
		return ErrInvalidAdminKey
	}
	if subtle.ConstantTimeCompare([]byte(credential), a.key) != 1 {
		return ErrInvalidAdminKey
	}
	return nil
}
