package api

import (
	"net/http"

	"code-lookup/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	adminHeader string
	lang        string
}

func NewPageHandler(cfg config.Config) *PageHandler {
	return &PageHandler{adminHeader: cfg.Admin.Header, lang: cfg.Locale}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Lang": h.lang})
}

func (h *PageHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{"Lang": h.lang, "AdminHeader": h.adminHeader})
}
