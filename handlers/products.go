package handlers

import (
	"net/http"

	"github.com/dulce-tentacion/pasteleria-backend/cache"
	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/labstack/echo/v4"
)

// ListProductsAdmin returns the summary projection of every product,
// sorted by name.
func (h *Handler) ListProductsAdmin(c echo.Context) error {
	rows, err := h.Products.ListProductSummaries(c.Request().Context())
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ListActiveProducts is the public menu, served from cache when possible.
func (h *Handler) ListActiveProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var cached []models.ProductRow
	if h.Cache.GetJSON(ctx, cache.KeyActiveProducts, &cached) {
		return c.JSON(http.StatusOK, cached)
	}

	rows, err := h.Products.ListActiveProducts(ctx)
	if err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.SetJSON(ctx, cache.KeyActiveProducts, rows)
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	product, err := h.Products.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var in store.CreateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	product, err := h.Products.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.Invalidate(c.Request().Context(), cache.KeyActiveProducts, cache.KeyIngredients)
	return c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var in store.UpdateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := h.Products.UpdateProduct(c.Request().Context(), id, in); err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.Invalidate(c.Request().Context(), cache.KeyActiveProducts, cache.KeyIngredients)
	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
}

// DeactivateProducts bulk-deactivates by id set; missing ids are skipped.
func (h *Handler) DeactivateProducts(c echo.Context) error {
	var req bulkIDsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	ids, ok := req.objectIDs()
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID in list"})
	}

	modified, err := h.Products.DeactivateProducts(c.Request().Context(), ids)
	if err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.Invalidate(c.Request().Context(), cache.KeyActiveProducts, cache.KeyIngredients)
	return c.JSON(http.StatusOK, map[string]int64{"modified": modified})
}

// ListIngredients aggregates the distinct ingredient values across the
// catalog.
func (h *Handler) ListIngredients(c echo.Context) error {
	ctx := c.Request().Context()

	var cached []string
	if h.Cache.GetJSON(ctx, cache.KeyIngredients, &cached) {
		return c.JSON(http.StatusOK, map[string][]string{"ingredientes_unicos": cached})
	}

	ingredients, err := h.Products.DistinctIngredients(ctx)
	if err != nil {
		return writeStoreError(c, err)
	}
	h.Cache.SetJSON(ctx, cache.KeyIngredients, ingredients)
	return c.JSON(http.StatusOK, map[string][]string{"ingredientes_unicos": ingredients})
}
