package handler

import (
	"net/http"

	"leavehub/internal/notification"
	"leavehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *notification.Service
}

func NewNotificationHandler(notifications *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/notifications/leave", h.SendLeaveNotification)
}

type leaveNotificationRequest struct {
	Event notification.EventType `json:"event" binding:"required"`
	notification.LeaveEvent
}

// SendLeaveNotification renders and sends the email for a leave lifecycle event
// @Summary      Send leave lifecycle notification
// @Description  Called by the notification dispatcher when a leave request changes state
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        payload  body      leaveNotificationRequest  true  "Lifecycle event payload"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      500      {object}  response.Envelope
// @Router       /notifications/leave [post]
func (h *NotificationHandler) SendLeaveNotification(c *gin.Context) {
	var req leaveNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Invalid request payload: "+err.Error()))
		return
	}

	if !notification.Valid(req.Event) {
		c.JSON(http.StatusBadRequest, response.Message("Unknown leave event type"))
		return
	}

	if err := h.notifications.Notify(c.Request.Context(), req.Event, req.LeaveEvent); err != nil {
		c.JSON(http.StatusInternalServerError, response.Message("Failed to send notification"))
		return
	}

	c.JSON(http.StatusOK, response.Message("Notification sent"))
}
