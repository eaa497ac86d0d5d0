package compensation

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
	l := zap.L().Named("compensation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compensation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("compensation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http submit compensation", zap.String("employee_id", id))

	var req SubmitCompensationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		h.logger.Warn("http compensation validation failed", zap.String("employee_id", id), zap.Error(err))
		response.Error(c, appErr.HTTPStatus, apperror.CodeValidationError, appErr.Message, err.Error())
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get compensation", zap.String("employee_id", id))

	resp, err := h.service.GetByEmployeeID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
