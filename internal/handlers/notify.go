package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poi-backend/internal/models"
	"poi-backend/internal/services"
)

// NotifyHandler exposes the internal notification trigger used when a status
// change is initiated elsewhere and the caller already holds the project row.
type NotifyHandler struct {
	notifier services.StatusNotifier
	logger   *zap.Logger
}

func NewNotifyHandler(notifier services.StatusNotifier, logger *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		notifier: notifier,
		logger:   logger,
	}
}

// SendStatusEmail godoc
// @Summary     Send a project status email
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body models.StatusEmailRequest true "project and recipient"
// @Success     200 {object} models.SuccessResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /email [post]
func (h *NotifyHandler) SendStatusEmail(c *gin.Context) {
	var req models.StatusEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if err := h.notifier.SendStatusUpdate(req.Project, req.UserEmail); err != nil {
		h.logger.Error("failed to send status email", zap.Error(err), zap.String("to", req.UserEmail))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
