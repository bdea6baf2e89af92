package handler

import "time"

// --- Request / Response types ---

type addressRequest struct {
	Label      string   `json:"label,omitempty"`
	Street     string   `json:"street"      validate:"required"`
	City       string   `json:"city"        validate:"required"`
	PostalCode string   `json:"postal_code"`
	Country    string   `json:"country,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type createDeliveryRequest struct {
	PickupAddress      addressRequest `json:"pickup_address"      validate:"required"`
	DeliveryAddress    addressRequest `json:"delivery_address"    validate:"required"`
	PackageSize        string         `json:"package_size"        validate:"required,oneof=small medium large"`
	PackageWeightKg    float64        `json:"package_weight_kg,omitempty"  validate:"gte=0"`
	PackageDescription string         `json:"package_description" validate:"required"`
	DeliverySpeed      string         `json:"delivery_speed"      validate:"required,oneof=standard express"`
}

// deliveryLinks advertises the delivery resource and its status-update
// endpoint (PATCH).
type deliveryLinks struct {
	Self   string `json:"self"`
	Status string `json:"status"`
}

type createDeliveryResponse struct {
	ID                    string        `json:"id"`
	Status                string        `json:"status"`
	EstimatedPrice        float64       `json:"estimated_price"`
	Currency              string        `json:"currency"`
	CreatedAt             time.Time     `json:"created_at"`
	EstimatedDeliveryTime time.Time     `json:"estimated_delivery_time"`
	Links                 deliveryLinks `json:"_links"`
}

type addressResponse struct {
	Label      string   `json:"label,omitempty"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code,omitempty"`
	Country    string   `json:"country,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type deliveryResponse struct {
	ID                    string          `json:"id"`
	ClientID              string          `json:"client_id"`
	DriverID              string          `json:"driver_id,omitempty"`
	PickupAddress         addressResponse `json:"pickup_address"`
	DeliveryAddress       addressResponse `json:"delivery_address"`
	PackageSize           string          `json:"package_size"`
	PackageWeightKg       float64         `json:"package_weight_kg,omitempty"`
	PackageDescription    string          `json:"package_description"`
	DeliverySpeed         string          `json:"delivery_speed"`
	EstimatedPrice        float64         `json:"estimated_price"`
	FinalPrice            float64         `json:"final_price,omitempty"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time      `json:"actual_delivery_time,omitempty"`
	DriverRating          int             `json:"driver_rating,omitempty"`
	DriverComment         string          `json:"driver_comment,omitempty"`
	Links                 deliveryLinks   `json:"_links"`
}

// updateStatusRequest only admits targets reachable through a status update.
// Driver assignment (accepted) has its own endpoint and pending only exists
// at creation.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=picked_up in_transit delivered cancelled"`
}

type rateDeliveryRequest struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}

type quoteRequest struct {
	PickupAddress   addressRequest `json:"pickup_address"   validate:"required"`
	DeliveryAddress addressRequest `json:"delivery_address" validate:"required"`
	PackageSize     string         `json:"package_size"     validate:"required,oneof=small medium large"`
	DeliverySpeed   string         `json:"delivery_speed"   validate:"required,oneof=standard express"`
}

type quoteResponse struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	DistanceKm float64 `json:"distance_km"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
