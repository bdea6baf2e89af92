package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/service"
)

// DriverHandler serves the courier directory.
type DriverHandler struct {
	drivers *service.DriverService
}

func NewDriverHandler(drivers *service.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

type driverResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	VehicleType     string              `json:"vehicle_type"`
	VehiclePlate    string              `json:"vehicle_plate,omitempty"`
	Rating          float64             `json:"rating"`
	TotalDeliveries int                 `json:"total_deliveries"`
	CurrentLocation *domain.Coordinates `json:"current_location,omitempty"`
}

// Nearby handles GET /v1/drivers/nearby.
//
// @Summary      List online verified drivers
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   driverResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/drivers/nearby [get]
func (h *DriverHandler) Nearby(c echo.Context) error {
	drivers, err := h.drivers.Nearby(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]driverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, driverResponse{
			ID:              d.ID,
			Name:            d.Name,
			VehicleType:     d.VehicleType,
			VehiclePlate:    d.VehiclePlate,
			Rating:          d.Rating,
			TotalDeliveries: d.TotalDeliveries,
			CurrentLocation: d.CurrentLocation,
		})
	}

	return c.JSON(http.StatusOK, out)
}
