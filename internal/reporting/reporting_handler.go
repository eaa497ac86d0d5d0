package reporting

import (
	"go-directory/internal/shared/apperror"
	"go-directory/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reporting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get reporting structure", zap.String("employee_id", id))

	resp, err := h.service.GetByEmployeeID(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("reporting request failed",
			zap.String("employee_id", id),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
