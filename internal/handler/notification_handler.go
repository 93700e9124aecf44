package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
	"github.com/noah-isme/aidt-dashboard-api/pkg/response"
)

type notificationService interface {
	Get(ctx context.Context, teacherID string) (*dto.NotificationTimeResponse, error)
	Save(ctx context.Context, teacherID string, req dto.NotificationTimeRequest) (*dto.NotificationTimeResponse, error)
}

// NotificationHandler exposes the dashboard reminder-time endpoints.
type NotificationHandler struct {
	service notificationService
}

// NewNotificationHandler builds a new handler.
func NewNotificationHandler(service notificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Get godoc
// @Summary Get the reminder time
// @Tags Notifications
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/{teacherId}/notification-time [get]
func (h *NotificationHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("teacherId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Save godoc
// @Summary Save the reminder time
// @Tags Notifications
// @Accept json
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Param payload body dto.NotificationTimeRequest true "Reminder time"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /teachers/{teacherId}/notification-time [put]
func (h *NotificationHandler) Save(c *gin.Context) {
	var req dto.NotificationTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notification payload"))
		return
	}
	resp, err := h.service.Save(c.Request.Context(), c.Param("teacherId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
