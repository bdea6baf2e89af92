package handler

import (
	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createDeliveryRequest, clientID string) ports.CreateDeliveryInput {
	return ports.CreateDeliveryInput{
		ClientID:           clientID,
		PickupAddress:      toAddressInput(req.PickupAddress),
		DeliveryAddress:    toAddressInput(req.DeliveryAddress),
		PackageSize:        req.PackageSize,
		PackageWeightKg:    req.PackageWeightKg,
		PackageDescription: req.PackageDescription,
		DeliverySpeed:      req.DeliverySpeed,
	}
}

func toAddressInput(a addressRequest) ports.AddressInput {
	return ports.AddressInput{
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
	}
}

func toQuoteInput(req quoteRequest) ports.QuoteInput {
	return ports.QuoteInput{
		PickupAddress:   toAddressInput(req.PickupAddress),
		DeliveryAddress: toAddressInput(req.DeliveryAddress),
		PackageSize:     req.PackageSize,
		DeliverySpeed:   req.DeliverySpeed,
	}
}

// --- Service result → HTTP response ---

func toCreateResponse(r *ports.DeliveryResult) createDeliveryResponse {
	return createDeliveryResponse{
		ID:                    r.ID,
		Status:                r.Status,
		EstimatedPrice:        r.EstimatedPrice,
		Currency:              r.Currency,
		CreatedAt:             r.CreatedAt.UTC(),
		EstimatedDeliveryTime: r.EstimatedDeliveryTime.UTC(),
		Links:                 linksFor(r.ID),
	}
}

func toDeliveryResponse(d *domain.DeliveryRequest) deliveryResponse {
	return deliveryResponse{
		ID:                    d.ID,
		ClientID:              d.ClientID,
		DriverID:              d.DriverID,
		PickupAddress:         toAddressResponse(d.PickupAddress),
		DeliveryAddress:       toAddressResponse(d.DeliveryAddress),
		PackageSize:           string(d.PackageSize),
		PackageWeightKg:       d.PackageWeightKg,
		PackageDescription:    d.PackageDescription,
		DeliverySpeed:         string(d.DeliverySpeed),
		EstimatedPrice:        d.EstimatedPrice,
		FinalPrice:            d.FinalPrice,
		Status:                string(d.Status),
		CreatedAt:             d.CreatedAt.UTC(),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		DriverRating:          d.DriverRating,
		DriverComment:         d.DriverComment,
		Links:                 linksFor(d.ID),
	}
}

func toDeliveryListResponse(deliveries []*domain.DeliveryRequest) []deliveryResponse {
	out := make([]deliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, toDeliveryResponse(d))
	}
	return out
}

func toAddressResponse(a domain.Address) addressResponse {
	resp := addressResponse{
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.Coordinates != nil {
		lat, lng := a.Coordinates.Latitude, a.Coordinates.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	return resp
}

func linksFor(deliveryID string) deliveryLinks {
	return deliveryLinks{
		Self:   "/v1/deliveries/" + deliveryID,
		Status: "/v1/deliveries/" + deliveryID + "/status",
	}
}
