package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// NotificationHandler serves in-app notifications.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type notificationResponse struct {
	ID         string    `json:"id"`
	DeliveryID string    `json:"delivery_id,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// List handles GET /v1/notifications, newest first.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   notificationResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.ListFor(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{
			ID:         n.ID,
			DeliveryID: n.DeliveryID,
			Title:      n.Title,
			Message:    n.Message,
			Type:       string(n.Type),
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, out)
}

// MarkRead handles POST /v1/notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  acceptedResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptedResponse{Message: "notification read"})
}
