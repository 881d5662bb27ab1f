package handlers

import (
	"net/http"

	"github.com/dulce-tentacion/pasteleria-backend/cache"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListRestaurants(c echo.Context) error {
	rows, err := h.Restaurants.ListRestaurants(c.Request().Context())
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ListActiveRestaurantNames is the public name listing, served from cache
// when possible.
func (h *Handler) ListActiveRestaurantNames(c echo.Context) error {
	ctx := c.Request().Context()

	var cached []string
	if h.Cache.GetJSON(ctx, cache.KeyRestaurantNames, &cached) {
		return c.JSON(http.StatusOK, cached)
	}

	names, err := h.Restaurants.ListActiveRestaurantNames(ctx)
	if err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.SetJSON(ctx, cache.KeyRestaurantNames, names)
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) GetRestaurant(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid restaurant ID"})
	}

	restaurant, err := h.Restaurants.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) GetRestaurantSchedule(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid restaurant ID"})
	}

	schedule, err := h.Restaurants.GetRestaurantSchedule(c.Request().Context(), id)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, schedule)
}

func (h *Handler) CreateRestaurant(c echo.Context) error {
	var in store.CreateRestaurantInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	restaurant, err := h.Restaurants.CreateRestaurant(c.Request().Context(), in)
	if err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.Invalidate(c.Request().Context(), cache.KeyRestaurantNames)
	return c.JSON(http.StatusCreated, restaurant)
}

func (h *Handler) UpdateRestaurant(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid restaurant ID"})
	}

	var in store.UpdateRestaurantInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := h.Restaurants.UpdateRestaurant(c.Request().Context(), id, in); err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.Invalidate(c.Request().Context(), cache.KeyRestaurantNames)
	return c.JSON(http.StatusOK, map[string]string{"message": "Restaurant updated"})
}
