package handlers

import (
	"log"
	"net/http"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/labstack/echo/v4"
)

// ListOrders is the admin listing over a date range, joined with user and
// restaurant names, newest first.
func (h *Handler) ListOrders(c echo.Context) error {
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date range"})
	}

	rows, err := h.Orders.ListOrders(c.Request().Context(), dates, pageFromQuery(c))
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetOrderDetail(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	detail, err := h.Orders.GetOrderDetail(c.Request().Context(), id)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListUserOrders(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date range"})
	}

	orders, err := h.Orders.ListUserOrders(c.Request().Context(), userID, dates, pageFromQuery(c))
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListRecentOrders(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	rows, err := h.Orders.ListRecentReceivedOrders(c.Request().Context(), userID)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	var in store.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	order, err := h.Orders.CreateOrder(c.Request().Context(), userID, in)
	if err != nil {
		return writeStoreError(c, err)
	}

	if err := h.Events.OrderCreated(c.Request().Context(), order); err != nil {
		log.Printf("Failed to publish order created event for %s: %v", order.ID.Hex(), err)
	}
	return c.JSON(http.StatusCreated, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"estado"`
}

// UpdateOrderStatus sets the status field only, within the allowed
// transition table.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	previous, err := h.Orders.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeStoreError(c, err)
	}

	if previous != req.Status {
		if err := h.Events.OrderStatusChanged(c.Request().Context(), id.Hex(), previous, req.Status); err != nil {
			log.Printf("Failed to publish status change event for %s: %v", id.Hex(), err)
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"estado": string(req.Status)})
}
