package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// QuoteHandler exposes price estimation without creating a delivery.
type QuoteHandler struct {
	pricing ports.PricingService
}

func NewQuoteHandler(pricing ports.PricingService) *QuoteHandler {
	return &QuoteHandler{pricing: pricing}
}

// Estimate handles POST /v1/quotes.
//
// @Summary      Estimate the price of a delivery
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      quoteRequest  true  "Quote parameters"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Estimate(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.pricing.Estimate(toQuoteInput(req))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, quoteResponse{
		Amount:     quote.Amount,
		Currency:   quote.Currency,
		DistanceKm: quote.DistanceKm,
	})
}
