package api

import (
	"net/http"

	"code-lookup/internal/handler/httperr"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps taxonomy marks to status codes. invalidKey picks
// the 400 message for the calling endpoint.
func abortWithUsecaseError(c *gin.Context, tr *i18n.Translator, err error, invalidKey string) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, tr.T(invalidKey), nil)
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, tr.T(i18n.KeyUnauthorized), nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, tr.T(i18n.KeyCodeExists), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, tr.T(i18n.KeyInternalError), nil)
	}
}
