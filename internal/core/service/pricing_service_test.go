package service

import (
	"math"
	"testing"

	"github.com/colisgo/delivery-platform/internal/core/ports"
)

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func addrWithCoords(lat, lon float64) ports.AddressInput {
	la, lo := coords(lat, lon)
	return ports.AddressInput{Street: "1 rue Test", City: "Lyon", Latitude: la, Longitude: lo}
}

func addrNoCoords() ports.AddressInput {
	return ports.AddressInput{Street: "1 rue Test", City: "Lyon"}
}

func TestEstimate_KnownScenarios(t *testing.T) {
	// Two points roughly 5 km apart on the same meridian: 0.044966 degrees of
	// latitude is 5 km on a 6371 km sphere.
	pickup := addrWithCoords(45.0, 4.85)
	dropoff := addrWithCoords(45.0449661, 4.85)

	tests := []struct {
		name  string
		size  string
		speed string
		want  float64
	}{
		{"medium standard", "medium", "standard", 13.50},
		{"medium express", "medium", "express", 24.30},
		{"small standard", "small", "standard", 9.00},
		{"large express", "large", "express", 32.40},
	}

	svc := NewPricingService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.Estimate(ports.QuoteInput{
				PickupAddress:   pickup,
				DeliveryAddress: dropoff,
				PackageSize:     tt.size,
				DeliverySpeed:   tt.speed,
			})
			if err != nil {
				t.Fatalf("Estimate() error: %v", err)
			}
			if quote.Amount != tt.want {
				t.Errorf("Estimate() = %.2f, want %.2f", quote.Amount, tt.want)
			}
			if quote.Currency != "EUR" {
				t.Errorf("currency = %q, want EUR", quote.Currency)
			}
		})
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	svc := NewPricingService()
	input := ports.QuoteInput{
		PickupAddress:   addrWithCoords(45.7640, 4.8357),
		DeliveryAddress: addrWithCoords(45.7606, 4.8590),
		PackageSize:     "medium",
		DeliverySpeed:   "express",
	}

	first, err := svc.Estimate(input)
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		q, err := svc.Estimate(input)
		if err != nil {
			t.Fatalf("Estimate() error: %v", err)
		}
		if q != first {
			t.Fatalf("Estimate() not deterministic: %+v vs %+v", q, first)
		}
	}
}

func TestEstimate_DefaultDistanceWithoutCoordinates(t *testing.T) {
	svc := NewPricingService()
	quote, err := svc.Estimate(ports.QuoteInput{
		PickupAddress:   addrNoCoords(),
		DeliveryAddress: addrNoCoords(),
		PackageSize:     "small",
		DeliverySpeed:   "standard",
	})
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}
	if quote.DistanceKm != 7.0 {
		t.Errorf("DistanceKm = %v, want 7.0 fallback", quote.DistanceKm)
	}
	// (5.00 + 7*0.80) * 1.0 * 1.0
	if quote.Amount != 10.60 {
		t.Errorf("Amount = %.2f, want 10.60", quote.Amount)
	}
}

func TestEstimate_PartialCoordinatesFallBack(t *testing.T) {
	svc := NewPricingService()
	quote, err := svc.Estimate(ports.QuoteInput{
		PickupAddress:   addrWithCoords(45.7640, 4.8357),
		DeliveryAddress: addrNoCoords(),
		PackageSize:     "small",
		DeliverySpeed:   "standard",
	})
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}
	if quote.DistanceKm != 7.0 {
		t.Errorf("DistanceKm = %v, want 7.0 when one end has no coordinates", quote.DistanceKm)
	}
}

func TestEstimate_UnknownSizeOrSpeed(t *testing.T) {
	svc := NewPricingService()

	if _, err := svc.Estimate(ports.QuoteInput{
		PickupAddress:   addrNoCoords(),
		DeliveryAddress: addrNoCoords(),
		PackageSize:     "gigantic",
		DeliverySpeed:   "standard",
	}); err == nil {
		t.Error("expected error for unknown package size")
	}

	if _, err := svc.Estimate(ports.QuoteInput{
		PickupAddress:   addrNoCoords(),
		DeliveryAddress: addrNoCoords(),
		PackageSize:     "small",
		DeliverySpeed:   "teleport",
	}); err == nil {
		t.Error("expected error for unknown delivery speed")
	}
}

func TestEstimate_MonotonicInDistanceSizeAndSpeed(t *testing.T) {
	svc := NewPricingService()
	near := ports.QuoteInput{
		PickupAddress:   addrWithCoords(45.7640, 4.8357),
		DeliveryAddress: addrWithCoords(45.7606, 4.8590),
		PackageSize:     "small",
		DeliverySpeed:   "standard",
	}
	far := near
	far.DeliveryAddress = addrWithCoords(45.70, 4.95)

	nearQuote, _ := svc.Estimate(near)
	farQuote, _ := svc.Estimate(far)
	if farQuote.Amount <= nearQuote.Amount {
		t.Errorf("longer distance must cost more: near %.2f, far %.2f", nearQuote.Amount, farQuote.Amount)
	}

	medium := near
	medium.PackageSize = "medium"
	mediumQuote, _ := svc.Estimate(medium)
	if mediumQuote.Amount <= nearQuote.Amount {
		t.Errorf("bigger package must cost more: small %.2f, medium %.2f", nearQuote.Amount, mediumQuote.Amount)
	}

	express := near
	express.DeliverySpeed = "express"
	expressQuote, _ := svc.Estimate(express)
	if expressQuote.Amount <= nearQuote.Amount {
		t.Errorf("express must cost more: standard %.2f, express %.2f", nearQuote.Amount, expressQuote.Amount)
	}
}

func TestHaversineKm(t *testing.T) {
	// Paris to Lyon, roughly 392 km great-circle.
	got := haversineKm(48.8566, 2.3522, 45.7640, 4.8357)
	if got < 380 || got > 400 {
		t.Errorf("haversineKm(Paris, Lyon) = %.1f, want ~392", got)
	}

	if d := haversineKm(45.0, 4.0, 45.0, 4.0); d != 0 {
		t.Errorf("haversineKm(same point) = %v, want 0", d)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{13.499, 13.50},
		{13.504, 13.50},
		{13.505, 13.51},
		{24.2999999, 24.30},
		{0, 0},
	}
	for _, tt := range tests {
		if got := round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
