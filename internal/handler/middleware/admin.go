package middleware

import (
	"log/slog"
	"net/http"

	"code-lookup/internal/handler/httperr"
	"code-lookup/internal/pkg/config"
	"code-lookup/internal/pkg/i18n"
	"code-lookup/internal/pkg/metrics"
	"code-lookup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminMiddleware struct {
	authenticator usecase.AdminAuthenticator
	header        string
	tr            *i18n.Translator
}

func NewAdminMiddleware(authenticator usecase.AdminAuthenticator, cfg config.AdminConfig, tr *i18n.Translator) *AdminMiddleware {
	return &AdminMiddleware{
		authenticator: authenticator,
		header:        cfg.Header,
		tr:            tr,
	}
}

// RequireAdmin runs before body binding so a bad credential is rejected
// regardless of payload validity.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticator.Authenticate(c.GetHeader(m.header)); err != nil {
			metrics.AdminAuthFailures.Inc()
			slog.Warn("admin authentication failed",
				"peer", PeerKey(c), "client_key", ClientKey(c), "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, m.tr.T(i18n.KeyUnauthorized), nil)
			return
		}
		c.Next()
	}
}
