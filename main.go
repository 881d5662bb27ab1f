package main

import (
	"context"
	"log"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/cache"
	"github.com/dulce-tentacion/pasteleria-backend/config"
	"github.com/dulce-tentacion/pasteleria-backend/database"
	"github.com/dulce-tentacion/pasteleria-backend/events"
	"github.com/dulce-tentacion/pasteleria-backend/handlers"
	"github.com/dulce-tentacion/pasteleria-backend/routes"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, database.DB); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Optional Redis cache for the hot public reads
	var reads *cache.Cache
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		ttl := time.Duration(config.GetEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second
		c, err := cache.New(addr, ttl)
		if err != nil {
			log.Println("Redis unavailable, running without cache:", err)
		} else {
			reads = c
			log.Println("Connected to Redis cache")
		}
	}

	// Optional RabbitMQ publisher for order events
	var publisher *events.Publisher
	if url := config.GetEnv("AMQP_URL", ""); url != "" {
		p, err := events.Connect(url)
		if err != nil {
			log.Println("RabbitMQ unavailable, running without events:", err)
		} else {
			publisher = p
			defer publisher.Close()
			log.Println("Connected to RabbitMQ")
		}
	}

	h := handlers.New(store.New(database.DB), reads, publisher)

	// Setup routes
	routes.SetupRoutes(e, h)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	e.Logger.Fatal(e.Start(":" + port))
}
