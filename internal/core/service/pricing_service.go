package service

import (
	"fmt"
	"math"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

const (
	basePrice = 5.00
	perKmRate = 0.80
	currency  = "EUR"

	// defaultDistanceKm is used when one of the addresses carries no
	// coordinates. Midpoint of the 2-12 km range the app was designed for.
	defaultDistanceKm = 7.0

	earthRadiusKm = 6371.0
)

var sizeMultiplier = map[domain.PackageSize]float64{
	domain.SizeSmall:  1.0,
	domain.SizeMedium: 1.5,
	domain.SizeLarge:  2.0,
}

var speedMultiplier = map[domain.DeliverySpeed]float64{
	domain.SpeedStandard: 1.0,
	domain.SpeedExpress:  1.8,
}

// PricingService computes deterministic delivery price estimates.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Estimate prices a delivery. The distance is the haversine distance between
// pickup and dropoff when both carry coordinates, defaultDistanceKm otherwise,
// so identical inputs always produce identical quotes.
func (p *PricingService) Estimate(input ports.QuoteInput) (ports.Quote, error) {
	size := domain.PackageSize(input.PackageSize)
	sizeMult, ok := sizeMultiplier[size]
	if !ok {
		return ports.Quote{}, fmt.Errorf("estimate: unknown package size %q", input.PackageSize)
	}

	speed := domain.DeliverySpeed(input.DeliverySpeed)
	speedMult, ok := speedMultiplier[speed]
	if !ok {
		return ports.Quote{}, fmt.Errorf("estimate: unknown delivery speed %q", input.DeliverySpeed)
	}

	distance := distanceKm(input.PickupAddress, input.DeliveryAddress)

	return ports.Quote{
		Amount:     priceFor(distance, sizeMult, speedMult),
		Currency:   currency,
		DistanceKm: round2(distance),
	}, nil
}

// priceFor applies the pricing formula: (base + distance rate) scaled by the
// size and speed multipliers, rounded to cents.
func priceFor(distanceKm, sizeMult, speedMult float64) float64 {
	return round2((basePrice + distanceKm*perKmRate) * sizeMult * speedMult)
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// distanceKm resolves the distance between the two addresses, falling back to
// defaultDistanceKm when either end has no coordinates.
func distanceKm(pickup, dropoff ports.AddressInput) float64 {
	if pickup.Latitude == nil || pickup.Longitude == nil ||
		dropoff.Latitude == nil || dropoff.Longitude == nil {
		return defaultDistanceKm
	}
	return haversineKm(*pickup.Latitude, *pickup.Longitude, *dropoff.Latitude, *dropoff.Longitude)
}

// haversineKm returns the great-circle distance between two points in km.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
