package handlers

import (
	"net/http"
	"strconv"

	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListReviews is the admin listing, filtered by score and date range,
// newest first.
func (h *Handler) ListReviews(c echo.Context) error {
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date range"})
	}

	filter := store.ReviewFilter{Dates: dates}
	if raw := c.QueryParam("puntuacion"); raw != "" {
		score, err := strconv.Atoi(raw)
		if err != nil || score < 1 || score > 5 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Score must be between 1 and 5"})
		}
		filter.Score = score
	}

	rows, err := h.Reviews.ListReviews(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// SearchReviews runs the free-text query, ranked by relevance.
func (h *Handler) SearchReviews(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query parameter q is required"})
	}

	rows, err := h.Reviews.SearchReviews(c.Request().Context(), query, pageFromQuery(c))
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetReviewDetail(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	detail, err := h.Reviews.GetReviewDetail(c.Request().Context(), id)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListUserReviews(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	rows, err := h.Reviews.ListUserReviews(c.Request().Context(), userID, pageFromQuery(c))
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) CreateReview(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	var in store.CreateReviewInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	review, err := h.Reviews.CreateReview(c.Request().Context(), userID, in)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	var in store.UpdateReviewInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := h.Reviews.UpdateReview(c.Request().Context(), id, in); err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Review updated"})
}

func (h *Handler) DeleteReview(c echo.Context) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID"})
	}

	if err := h.Reviews.DeleteReview(c.Request().Context(), id); err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Review deleted"})
}

type bulkIDsRequest struct {
	IDs []string `json:"ids"`
}

func (r bulkIDsRequest) objectIDs() ([]primitive.ObjectID, bool) {
	ids := make([]primitive.ObjectID, 0, len(r.IDs))
	for _, raw := range r.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// DeleteReviews bulk-deletes by id set; missing ids are skipped.
func (h *Handler) DeleteReviews(c echo.Context) error {
	var req bulkIDsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	ids, ok := req.objectIDs()
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid review ID in list"})
	}

	deleted, err := h.Reviews.DeleteReviews(c.Request().Context(), ids)
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}
