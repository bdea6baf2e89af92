package domain

import (
	"errors"
	"time"
)

// DeliveryStatus represents the lifecycle state of a delivery request.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusAccepted  DeliveryStatus = "accepted"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusInTransit DeliveryStatus = "in_transit"
	StatusDelivered DeliveryStatus = "delivered"
	StatusCancelled DeliveryStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// delivered and cancelled are terminal: no outgoing edges.
var validTransitions = map[DeliveryStatus][]DeliveryStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPickedUp, StatusCancelled},
	StatusPickedUp:  {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
}

var ErrDeliveryNotFound = errors.New("delivery not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrCreationFailed = errors.New("delivery creation failed")
var ErrNoActiveDelivery = errors.New("no active delivery")
var ErrActiveDeliveryExists = errors.New("an active delivery already exists")
var ErrNotDelivered = errors.New("delivery is not in delivered status")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive reports whether the status counts as a claimed, unfinished delivery.
func (s DeliveryStatus) IsActive() bool {
	return s == StatusAccepted || s == StatusPickedUp || s == StatusInTransit
}

// IsTerminal reports whether the status permits no further transitions.
func (s DeliveryStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ActiveStatuses lists every status for which a delivery counts as active.
// The order is stable so query filters stay deterministic.
func ActiveStatuses() []DeliveryStatus {
	return []DeliveryStatus{StatusAccepted, StatusPickedUp, StatusInTransit}
}

// PackageSize is the declared size category of a parcel.
type PackageSize string

const (
	SizeSmall  PackageSize = "small"
	SizeMedium PackageSize = "medium"
	SizeLarge  PackageSize = "large"
)

// DeliverySpeed is the requested service tier.
type DeliverySpeed string

const (
	SpeedStandard DeliverySpeed = "standard"
	SpeedExpress  DeliverySpeed = "express"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Address represents a physical location. Coordinates are optional; when
// absent the pricing layer falls back to a fixed default distance.
type Address struct {
	Label       string       `json:"label,omitempty" bson:"label,omitempty"`
	Street      string       `json:"street" bson:"street"`
	City        string       `json:"city" bson:"city"`
	PostalCode  string       `json:"postal_code" bson:"postal_code"`
	Country     string       `json:"country,omitempty" bson:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// DeliveryRequest is the core aggregate root. DriverID stays empty until a
// driver accepts the request.
type DeliveryRequest struct {
	ID                    string         `json:"id" bson:"_id"`
	ClientID              string         `json:"client_id" bson:"client_id"`
	DriverID              string         `json:"driver_id,omitempty" bson:"driver_id,omitempty"`
	PickupAddress         Address        `json:"pickup_address" bson:"pickup_address"`
	DeliveryAddress       Address        `json:"delivery_address" bson:"delivery_address"`
	PackageSize           PackageSize    `json:"package_size" bson:"package_size"`
	PackageWeightKg       float64        `json:"package_weight_kg,omitempty" bson:"package_weight_kg,omitempty"`
	PackageDescription    string         `json:"package_description" bson:"package_description"`
	DeliverySpeed         DeliverySpeed  `json:"delivery_speed" bson:"delivery_speed"`
	EstimatedPrice        float64        `json:"estimated_price" bson:"estimated_price"`
	FinalPrice            float64        `json:"final_price,omitempty" bson:"final_price,omitempty"`
	Status                DeliveryStatus `json:"status" bson:"status"`
	CreatedAt             time.Time      `json:"created_at" bson:"created_at"`
	EstimatedDeliveryTime *time.Time     `json:"estimated_delivery_time,omitempty" bson:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time     `json:"actual_delivery_time,omitempty" bson:"actual_delivery_time,omitempty"`
	DriverRating          int            `json:"driver_rating,omitempty" bson:"driver_rating,omitempty"`
	DriverComment         string         `json:"driver_comment,omitempty" bson:"driver_comment,omitempty"`
}

// Involves reports whether userID participates in the delivery as requester or driver.
func (d *DeliveryRequest) Involves(userID string) bool {
	return d.ClientID == userID || (d.DriverID != "" && d.DriverID == userID)
}
