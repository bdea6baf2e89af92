package domain

import (
	"errors"
	"time"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationDeliveryRequest NotificationType = "delivery_request"
	NotificationStatusUpdate    NotificationType = "status_update"
	NotificationPayment         NotificationType = "payment"
	NotificationGeneral         NotificationType = "general"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is an in-app message delivered to a single user.
type Notification struct {
	ID         string           `json:"id" bson:"_id"`
	UserID     string           `json:"user_id" bson:"user_id"`
	DeliveryID string           `json:"delivery_id,omitempty" bson:"delivery_id,omitempty"`
	Title      string           `json:"title" bson:"title"`
	Message    string           `json:"message" bson:"message"`
	Type       NotificationType `json:"type" bson:"type"`
	IsRead     bool             `json:"is_read" bson:"is_read"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
}
