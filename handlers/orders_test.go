package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/handlers"
	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetOrderDetail(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	orderID := primitive.NewObjectID()
	detail := &models.OrderDetail{
		ID:             orderID,
		Date:           time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
		Username:       "cliente_maria",
		RestaurantName: "Dulce Tentación Zona 15",
		Total:          535.00,
		Status:         models.OrderStatusReceived,
		Products: []models.LineItem{
			{Name: "Pastel de Chocolate", Quantity: 2, UnitPrice: 185.00},
			{Name: "Cheesecake de Fresas", Quantity: 1, UnitPrice: 165.00},
		},
	}
	mockOrders.On("GetOrderDetail", mock.Anything, orderID).Return(detail, nil).Once()

	c, rec := newContext(http.MethodGet, "/shared/pedidos/"+orderID.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(orderID.Hex())

	require.NoError(t, h.GetOrderDetail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 535.00, got.Total)
	assert.Len(t, got.Products, 2)
	mockOrders.AssertExpectations(t)
}

func TestGetOrderDetailNotFound(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	orderID := primitive.NewObjectID()
	mockOrders.On("GetOrderDetail", mock.Anything, orderID).Return(nil, store.ErrNotFound).Once()

	c, rec := newContext(http.MethodGet, "/shared/pedidos/"+orderID.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(orderID.Hex())

	require.NoError(t, h.GetOrderDetail(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderDetailInvalidID(t *testing.T) {
	h := &handlers.Handler{Orders: new(MockOrderStore)}

	c, rec := newContext(http.MethodGet, "/shared/pedidos/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.GetOrderDetail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrdersParsesQuery(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	expectedRange := store.DateRange{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond),
	}
	mockOrders.On("ListOrders", mock.Anything, expectedRange, store.Page{Skip: 10, Limit: 10}).
		Return([]models.OrderRow{}, nil).Once()

	c, rec := newContext(http.MethodGet, "/admin/pedidos?desde=2025-06-01&hasta=2025-12-31&skip=10", "")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockOrders.AssertExpectations(t)
}

func TestListOrdersCapsLimit(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	mockOrders.On("ListOrders", mock.Anything, store.DateRange{}, store.Page{Skip: 0, Limit: store.MaxLimit}).
		Return([]models.OrderRow{}, nil).Once()

	c, _ := newContext(http.MethodGet, "/admin/pedidos?limit=5000", "")

	require.NoError(t, h.ListOrders(c))
	mockOrders.AssertExpectations(t)
}

func TestUpdateOrderStatus(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	orderID := primitive.NewObjectID()
	mockOrders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusOnTheWay).
		Return(models.OrderStatusInKitchen, nil).Once()

	c, rec := newContext(http.MethodPut, "/admin/pedidos/"+orderID.Hex()+"/estado", `{"estado":"En camino"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.Hex())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "En camino")
	mockOrders.AssertExpectations(t)
}

func TestUpdateOrderStatusRejectedTransition(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	orderID := primitive.NewObjectID()
	mockOrders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusInKitchen).
		Return(models.OrderStatus(""), store.ErrValidation).Once()

	c, rec := newContext(http.MethodPut, "/admin/pedidos/"+orderID.Hex()+"/estado", `{"estado":"En cocina"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.Hex())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	orderID := primitive.NewObjectID()
	mockOrders.On("UpdateOrderStatus", mock.Anything, orderID, models.OrderStatusReceived).
		Return(models.OrderStatus(""), store.ErrNotFound).Once()

	c, rec := newContext(http.MethodPut, "/admin/pedidos/"+orderID.Hex()+"/estado", `{"estado":"Recibido"}`)
	c.SetParamNames("id")
	c.SetParamValues(orderID.Hex())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	h := &handlers.Handler{Orders: new(MockOrderStore)}

	c, rec := newContext(http.MethodPost, "/cliente/pedidos", `{"id_restaurante":"x","productos":[]}`)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	userID := primitive.NewObjectID()
	restaurantID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	in := store.CreateOrderInput{
		RestaurantID: restaurantID.Hex(),
		Items:        []store.OrderItemInput{{ProductID: productID.Hex(), Quantity: 2}},
	}
	created := &models.Order{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       models.OrderStatusInKitchen,
		Total:        370.00,
	}
	mockOrders.On("CreateOrder", mock.Anything, userID, in).Return(created, nil).Once()

	body := `{"id_restaurante":"` + restaurantID.Hex() + `","productos":[{"producto_id":"` + productID.Hex() + `","cantidad":2}]}`
	c, rec := newContext(http.MethodPost, "/cliente/pedidos", body)
	asClient(c, userID)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.OrderStatusInKitchen, got.Status)
	assert.Equal(t, 370.00, got.Total)
	mockOrders.AssertExpectations(t)
}

func TestListRecentOrders(t *testing.T) {
	mockOrders := new(MockOrderStore)
	h := &handlers.Handler{Orders: mockOrders}

	userID := primitive.NewObjectID()
	rows := []models.RecentOrderRow{
		{ID: primitive.NewObjectID(), RestaurantName: "Dulce Tentación Zona 1", Status: models.OrderStatusReceived},
	}
	mockOrders.On("ListRecentReceivedOrders", mock.Anything, userID).Return(rows, nil).Once()

	c, rec := newContext(http.MethodGet, "/cliente/pedidos/recientes", "")
	asClient(c, userID)

	require.NoError(t, h.ListRecentOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dulce Tentación Zona 1")
	mockOrders.AssertExpectations(t)
}
