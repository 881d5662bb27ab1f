package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/cache"
	"github.com/dulce-tentacion/pasteleria-backend/events"
	"github.com/dulce-tentacion/pasteleria-backend/middleware"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler wires the HTTP surface to the store. Cache and Events may be
// nil; both degrade to no-ops.
type Handler struct {
	Users       store.UserStore
	Reviews     store.ReviewStore
	Orders      store.OrderStore
	Products    store.ProductStore
	Restaurants store.RestaurantStore
	Cache       *cache.Cache
	Events      *events.Publisher
}

func New(s *store.Store, c *cache.Cache, e *events.Publisher) *Handler {
	return &Handler{
		Users:       s,
		Reviews:     s,
		Orders:      s,
		Products:    s,
		Restaurants: s,
		Cache:       c,
		Events:      e,
	}
}

// writeStoreError maps the store error taxonomy onto HTTP statuses.
func writeStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	case errors.Is(err, store.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

func objectIDParam(c echo.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(name))
}

func userIDFromContext(c echo.Context) (primitive.ObjectID, bool) {
	userID, ok := c.Get(middleware.ContextUserID).(primitive.ObjectID)
	return userID, ok
}

func pageFromQuery(c echo.Context) store.Page {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	return store.NewPage(skip, limit)
}

// dateRangeFromQuery reads desde/hasta bounds, accepting RFC 3339 or a
// plain date. An hasta given as a date covers that whole day.
func dateRangeFromQuery(c echo.Context) (store.DateRange, error) {
	var r store.DateRange

	if raw := c.QueryParam("desde"); raw != "" {
		t, _, err := parseQueryTime(raw)
		if err != nil {
			return r, err
		}
		r.From = t
	}
	if raw := c.QueryParam("hasta"); raw != "" {
		t, dateOnly, err := parseQueryTime(raw)
		if err != nil {
			return r, err
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.To = t
	}
	return r, nil
}

func parseQueryTime(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
