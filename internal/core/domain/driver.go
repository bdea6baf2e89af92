package domain

import "errors"

var ErrDriverNotFound = errors.New("driver not found")

// Driver is the public courier profile shown to requesters when a delivery
// is being matched.
type Driver struct {
	ID              string       `json:"id" bson:"_id"`
	Name            string       `json:"name" bson:"name"`
	Email           string       `json:"email" bson:"email"`
	Phone           string       `json:"phone" bson:"phone"`
	AvatarURL       string       `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	IsOnline        bool         `json:"is_online" bson:"is_online"`
	IsVerified      bool         `json:"is_verified" bson:"is_verified"`
	VehicleType     string       `json:"vehicle_type" bson:"vehicle_type"`
	VehiclePlate    string       `json:"vehicle_plate,omitempty" bson:"vehicle_plate,omitempty"`
	Rating          float64      `json:"rating" bson:"rating"`
	TotalDeliveries int          `json:"total_deliveries" bson:"total_deliveries"`
	CurrentLocation *Coordinates `json:"current_location,omitempty" bson:"current_location,omitempty"`
}
