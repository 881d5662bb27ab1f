package handlers_test

import (
	"context"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) ListReviews(ctx context.Context, f store.ReviewFilter, p store.Page) ([]models.ReviewRow, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewRow), args.Error(1)
}

func (m *MockReviewStore) SearchReviews(ctx context.Context, query string, p store.Page) ([]models.ReviewRow, error) {
	args := m.Called(ctx, query, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewRow), args.Error(1)
}

func (m *MockReviewStore) GetReviewDetail(ctx context.Context, id primitive.ObjectID) (*models.ReviewDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewDetail), args.Error(1)
}

func (m *MockReviewStore) ListUserReviews(ctx context.Context, userID primitive.ObjectID, p store.Page) ([]models.UserReviewRow, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserReviewRow), args.Error(1)
}

func (m *MockReviewStore) CreateReview(ctx context.Context, userID primitive.ObjectID, in store.CreateReviewInput) (*models.Review, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewStore) UpdateReview(ctx context.Context, id primitive.ObjectID, in store.UpdateReviewInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockReviewStore) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewStore) DeleteReviews(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) ListOrders(ctx context.Context, r store.DateRange, p store.Page) ([]models.OrderRow, error) {
	args := m.Called(ctx, r, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderRow), args.Error(1)
}

func (m *MockOrderStore) GetOrderDetail(ctx context.Context, id primitive.ObjectID) (*models.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockOrderStore) ListUserOrders(ctx context.Context, userID primitive.ObjectID, r store.DateRange, p store.Page) ([]models.Order, error) {
	args := m.Called(ctx, userID, r, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) ListRecentReceivedOrders(ctx context.Context, userID primitive.ObjectID) ([]models.RecentOrderRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecentOrderRow), args.Error(1)
}

func (m *MockOrderStore) CreateOrder(ctx context.Context, userID primitive.ObjectID, in store.CreateOrderInput) (*models.Order, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (models.OrderStatus, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.OrderStatus), args.Error(1)
}

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) ListProductSummaries(ctx context.Context) ([]models.ProductRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductRow), args.Error(1)
}

func (m *MockProductStore) ListActiveProducts(ctx context.Context) ([]models.ProductRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductRow), args.Error(1)
}

func (m *MockProductStore) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) CreateProduct(ctx context.Context, in store.CreateProductInput) (*models.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) UpdateProduct(ctx context.Context, id primitive.ObjectID, in store.UpdateProductInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockProductStore) DeactivateProducts(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductStore) DistinctIngredients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockRestaurantStore struct {
	mock.Mock
}

func (m *MockRestaurantStore) ListRestaurants(ctx context.Context) ([]models.RestaurantRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RestaurantRow), args.Error(1)
}

func (m *MockRestaurantStore) ListActiveRestaurantNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRestaurantStore) GetRestaurant(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) GetRestaurantSchedule(ctx context.Context, id primitive.ObjectID) (*models.RestaurantSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RestaurantSchedule), args.Error(1)
}

func (m *MockRestaurantStore) CreateRestaurant(ctx context.Context, in store.CreateRestaurantInput) (*models.Restaurant, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) UpdateRestaurant(ctx context.Context, id primitive.ObjectID, in store.UpdateRestaurantInput) error {
	return m.Called(ctx, id, in).Error(0)
}
