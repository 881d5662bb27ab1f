// Package store is the query and aggregation layer over the five
// collections. Every operation is a single request-scoped call to the
// storage engine; referential integrity is checked here before writes
// because the engine does not enforce it.
package store

import (
	"context"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ColUsers       = "usuarios"
	ColProducts    = "productos"
	ColRestaurants = "restaurantes"
	ColOrders      = "pedidos"
	ColReviews     = "resenias"
)

const queryTimeout = 10 * time.Second

type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type ReviewStore interface {
	ListReviews(ctx context.Context, f ReviewFilter, p Page) ([]models.ReviewRow, error)
	SearchReviews(ctx context.Context, query string, p Page) ([]models.ReviewRow, error)
	GetReviewDetail(ctx context.Context, id primitive.ObjectID) (*models.ReviewDetail, error)
	ListUserReviews(ctx context.Context, userID primitive.ObjectID, p Page) ([]models.UserReviewRow, error)
	CreateReview(ctx context.Context, userID primitive.ObjectID, in CreateReviewInput) (*models.Review, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, in UpdateReviewInput) error
	DeleteReview(ctx context.Context, id primitive.ObjectID) error
	DeleteReviews(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type OrderStore interface {
	ListOrders(ctx context.Context, r DateRange, p Page) ([]models.OrderRow, error)
	GetOrderDetail(ctx context.Context, id primitive.ObjectID) (*models.OrderDetail, error)
	ListUserOrders(ctx context.Context, userID primitive.ObjectID, r DateRange, p Page) ([]models.Order, error)
	ListRecentReceivedOrders(ctx context.Context, userID primitive.ObjectID) ([]models.RecentOrderRow, error)
	CreateOrder(ctx context.Context, userID primitive.ObjectID, in CreateOrderInput) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (models.OrderStatus, error)
}

type ProductStore interface {
	ListProductSummaries(ctx context.Context) ([]models.ProductRow, error)
	ListActiveProducts(ctx context.Context) ([]models.ProductRow, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, in UpdateProductInput) error
	DeactivateProducts(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	DistinctIngredients(ctx context.Context) ([]string, error)
}

type RestaurantStore interface {
	ListRestaurants(ctx context.Context) ([]models.RestaurantRow, error)
	ListActiveRestaurantNames(ctx context.Context) ([]string, error)
	GetRestaurant(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	GetRestaurantSchedule(ctx context.Context, id primitive.ObjectID) (*models.RestaurantSchedule, error)
	CreateRestaurant(ctx context.Context, in CreateRestaurantInput) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id primitive.ObjectID, in UpdateRestaurantInput) error
}

// Store implements all five per-entity interfaces against one database.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
