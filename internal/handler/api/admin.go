package api

import (
	"net/http"
	"strconv"

	reqdto "code-lookup/internal/handler/dto/request"
	resdto "code-lookup/internal/handler/dto/response"
	"code-lookup/internal/handler/httperr"
	"code-lookup/internal/pkg/i18n"
	"code-lookup/internal/usecase/commands"
	"code-lookup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.CodeCommands
	q    queries.CodeQueries
	tr   *i18n.Translator
}

func NewAdminHandler(cmds commands.CodeCommands, q queries.CodeQueries, tr *i18n.Translator) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q, tr: tr}
}

// @Summary List codes
// @Description List every code record, newest first
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {array} resdto.CodeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/codes [get]
func (h *AdminHandler) List(c *gin.Context) {
	views, err := h.q.ListCodes(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, h.tr, err, i18n.KeyInvalidRequest)
		return
	}
	res, err := resdto.FromCodeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, h.tr.T(i18n.KeyInternalError), nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add code
// @Description Create a code record. The code is stored upper-cased.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body reqdto.AddCodeRequest true "Code and message"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/codes [post]
func (h *AdminHandler) Add(c *gin.Context) {
	var req reqdto.AddCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, h.tr.T(i18n.KeyInvalidRequest), nil)
		return
	}
	if err := h.cmds.AddCode(c.Request.Context(), req); err != nil {
		abortWithUsecaseError(c, h.tr, err, i18n.KeyCodeAndMessageRequired)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Delete code
// @Description Delete a code record by id. Unknown ids succeed.
// @Tags admin
// @Produce json
// @Security AdminKey
// @Param id path int true "Record ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/codes/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, h.tr.T(i18n.KeyInvalidID), nil)
		return
	}
	if err := h.cmds.DeleteCode(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, h.tr, err, i18n.KeyInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}
