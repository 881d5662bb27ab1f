package routes

import (
	"github.com/dulce-tentacion/pasteleria-backend/handlers"
	customMiddleware "github.com/dulce-tentacion/pasteleria-backend/middleware"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes maps the endpoint table onto the handler set. Three route
// classes: public, /admin (administrators only) and /cliente (any
// authenticated user).
func SetupRoutes(e *echo.Echo, h *handlers.Handler) {
	e.Use(customMiddleware.Metrics)

	// Public routes
	e.POST("/auth/login", h.Login)
	e.GET("/restaurantes/nombres", h.ListActiveRestaurantNames)
	e.GET("/productos/lista", h.ListActiveProducts)

	// Admin routes
	admin := e.Group("/admin", customMiddleware.AuthMiddleware, customMiddleware.RequireAdmin)
	admin.GET("/resenias", h.ListReviews)
	admin.GET("/resenias/buscar", h.SearchReviews)
	admin.GET("/resenias/:id", h.GetReviewDetail)
	admin.GET("/pedidos", h.ListOrders)
	admin.PUT("/pedidos/:id/estado", h.UpdateOrderStatus)
	admin.GET("/productos", h.ListProductsAdmin)
	admin.GET("/productos/ingredientes", h.ListIngredients)
	admin.POST("/productos", h.CreateProduct)
	admin.PUT("/productos/estado", h.DeactivateProducts)
	admin.GET("/productos/:id", h.GetProduct)
	admin.PUT("/productos/:id", h.UpdateProduct)
	admin.GET("/restaurantes", h.ListRestaurants)
	admin.GET("/restaurantes/:id/horario", h.GetRestaurantSchedule)
	admin.GET("/restaurantes/:id", h.GetRestaurant)
	admin.POST("/restaurantes", h.CreateRestaurant)
	admin.PUT("/restaurantes/:id", h.UpdateRestaurant)

	// Shared routes (any authenticated user)
	shared := e.Group("/shared", customMiddleware.AuthMiddleware)
	shared.GET("/pedidos/:id", h.GetOrderDetail)

	// Client routes
	cliente := e.Group("/cliente", customMiddleware.AuthMiddleware)
	cliente.GET("/pedidos", h.ListUserOrders)
	cliente.GET("/pedidos/recientes", h.ListRecentOrders)
	cliente.POST("/pedidos", h.CreateOrder)
	cliente.GET("/resenias", h.ListUserReviews)
	cliente.POST("/resenias", h.CreateReview)
	cliente.PUT("/resenias/:id", h.UpdateReview)
	cliente.DELETE("/resenias/:id", h.DeleteReview)
	cliente.DELETE("/resenias", h.DeleteReviews)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
