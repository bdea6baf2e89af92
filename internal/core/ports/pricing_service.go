package ports

// QuoteInput carries everything needed to price a delivery.
type QuoteInput struct {
	PickupAddress   AddressInput
	DeliveryAddress AddressInput
	PackageSize     string
	DeliverySpeed   string
}

// Quote is a price estimate. The same input always yields the same quote.
type Quote struct {
	Amount     float64
	Currency   string
	DistanceKm float64
}

// PricingService estimates delivery prices. Estimate is a pure function:
// no I/O, no randomness.
type PricingService interface {
	Estimate(input QuoteInput) (Quote, error)
}
