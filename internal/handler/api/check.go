package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "code-lookup/internal/handler/dto/request"
	resdto "code-lookup/internal/handler/dto/response"
	"code-lookup/internal/handler/httperr"
	"code-lookup/internal/handler/middleware"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/pkg/i18n"
	"code-lookup/internal/pkg/metrics"
	"code-lookup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckHandler struct {
	q  queries.LookupQueries
	tr *i18n.Translator
}

func NewCheckHandler(q queries.LookupQueries, tr *i18n.Translator) *CheckHandler {
	return &CheckHandler{q: q, tr: tr}
}

// @Summary Check code
// @Description Look up the message for a code. Calls are rate limited per client.
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body reqdto.CheckCodeRequest true "Code to check"
// @Success 200 {object} resdto.CheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} resdto.RateLimitedResponse
// @Router /api/check [post]
func (h *CheckHandler) Check(c *gin.Context) {
	var req reqdto.CheckCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordCheck(metrics.OutcomeInvalid)
		httperr.AbortWithError(c, http.StatusBadRequest, err, h.tr.T(i18n.KeyInvalidRequest), nil)
		return
	}

	result, err := h.q.CheckCode(c.Request.Context(), req.Code, middleware.ClientKey(c))
	if err != nil {
		var rlErr *queries.RateLimitError
		switch {
		case errors.As(err, &rlErr):
			metrics.RecordCheck(metrics.OutcomeRateLimited)
			_ = c.Error(err)
			c.Header("Retry-After", strconv.Itoa(rlErr.RetryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resdto.RateLimitedResponse{
				Success:    false,
				Message:    h.tr.T(i18n.KeyRateLimited, rlErr.RetryAfter),
				RetryAfter: rlErr.RetryAfter,
			})
		case errs.Is(err, errs.ErrInvalidInput):
			metrics.RecordCheck(metrics.OutcomeInvalid)
			abortWithUsecaseError(c, h.tr, err, i18n.KeyCodeRequired)
		default:
			abortWithUsecaseError(c, h.tr, err, i18n.KeyCodeRequired)
		}
		return
	}

	if result.Found {
		metrics.RecordCheck(metrics.OutcomeFound)
	} else {
		metrics.RecordCheck(metrics.OutcomeNotFound)
	}
	c.JSON(http.StatusOK, resdto.CheckResponse{Success: result.Found, Message: result.Message})
}
