package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// DeliveryHandler handles HTTP requests for the delivery lifecycle.
type DeliveryHandler struct {
	service ports.DeliveryService
}

func NewDeliveryHandler(service ports.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

// Create handles POST /v1/deliveries.
//
// @Summary      Create a delivery request
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDeliveryRequest  true  "Delivery details"
// @Success      201   {object}  createDeliveryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/deliveries [post]
func (h *DeliveryHandler) Create(c echo.Context) error {
	var req createDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCreateResponse(result))
}

// Get handles GET /v1/deliveries/:id.
//
// @Summary      Get a delivery by id
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Delivery id"
// @Success      200  {object}  deliveryResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/deliveries/{id} [get]
func (h *DeliveryHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	delivery, err := h.service.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDeliveryResponse(delivery))
}

// List handles GET /v1/deliveries, the caller's delivery history.
//
// @Summary      List the caller's deliveries, oldest first
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   deliveryResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/deliveries [get]
func (h *DeliveryHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	deliveries, err := h.service.HistoryFor(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDeliveryListResponse(deliveries))
}

// Active handles GET /v1/deliveries/active.
//
// @Summary      Get the caller's current active delivery
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  deliveryResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/deliveries/active [get]
func (h *DeliveryHandler) Active(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	delivery, err := h.service.ActiveFor(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDeliveryResponse(delivery))
}

// Accept handles POST /v1/deliveries/:id/accept. Drivers only.
//
// @Summary      Accept a pending delivery
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Delivery id"
// @Success      200  {object}  acceptedResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/deliveries/{id}/accept [post]
func (h *DeliveryHandler) Accept(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Accept(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptedResponse{Message: "delivery accepted"})
}

// UpdateStatus handles PATCH /v1/deliveries/:id/status.
//
// @Summary      Advance a delivery to a new status
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Delivery id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  acceptedResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/deliveries/{id}/status [patch]
func (h *DeliveryHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		DeliveryID: c.Param("id"),
		Status:     req.Status,
		ActorID:    userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptedResponse{Message: "status updated"})
}

// Rate handles POST /v1/deliveries/:id/rating.
//
// @Summary      Rate the driver of a delivered delivery
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Delivery id"
// @Param        body  body      rateDeliveryRequest  true  "Rating"
// @Success      200   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/deliveries/{id}/rating [post]
func (h *DeliveryHandler) Rate(c echo.Context) error {
	var req rateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.service.Rate(c.Request().Context(), ports.RateDeliveryInput{
		DeliveryID: c.Param("id"),
		ActorID:    userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptedResponse{Message: "rating saved"})
}
