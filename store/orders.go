package store

import (
	"context"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recentOrderCount = 5

type OrderItemInput struct {
	ProductID string `json:"producto_id" validate:"required"`
	Quantity  int    `json:"cantidad" validate:"required,min=1"`
}

type CreateOrderInput struct {
	RestaurantID string           `json:"id_restaurante" validate:"required"`
	Items        []OrderItemInput `json:"productos" validate:"required,min=1,dive"`
}

func orderListPipeline(r DateRange, p Page) mongo.Pipeline {
	match := bson.M{}
	if dates := dateRangeQuery(r); dates != nil {
		match["fecha_pedido"] = dates
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{"from": ColUsers, "localField": "id_usuario", "foreignField": "_id", "as": "usuario"}}},
		{{Key: "$unwind", Value: "$usuario"}},
		{{Key: "$lookup", Value: bson.M{"from": ColRestaurants, "localField": "id_restaurante", "foreignField": "_id", "as": "restaurante"}}},
		{{Key: "$unwind", Value: "$restaurante"}},
		{{Key: "$project", Value: bson.M{
			"fecha_pedido":       1,
			"total":              1,
			"estado":             1,
			"nombre_usuario":     "$usuario.nombre_usuario",
			"nombre_restaurante": "$restaurante.nombre_restaurante",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "fecha_pedido", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: p.Skip}},
		{{Key: "$limit", Value: p.Limit}},
	}
}

func (s *Store) ListOrders(ctx context.Context, r DateRange, p Page) ([]models.OrderRow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColOrders).Aggregate(ctx, orderListPipeline(r, p))
	if err != nil {
		return nil, err
	}
	rows := []models.OrderRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// orderDetailPipeline flattens one order with its user and restaurant names
// and the product names of every line item. Inner-join semantics: if any
// reference dangles the row is dropped and the caller sees NotFound.
func orderDetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{"from": ColUsers, "localField": "id_usuario", "foreignField": "_id", "as": "usuario"}}},
		{{Key: "$unwind", Value: "$usuario"}},
		{{Key: "$lookup", Value: bson.M{"from": ColRestaurants, "localField": "id_restaurante", "foreignField": "_id", "as": "restaurante"}}},
		{{Key: "$unwind", Value: "$restaurante"}},
		{{Key: "$unwind", Value: "$productos"}},
		{{Key: "$lookup", Value: bson.M{"from": ColProducts, "localField": "productos.producto_id", "foreignField": "_id", "as": "producto_info"}}},
		{{Key: "$unwind", Value: "$producto_info"}},
		{{Key: "$group", Value: bson.M{
			"_id":                "$_id",
			"fecha_pedido":       bson.M{"$first": "$fecha_pedido"},
			"nombre_usuario":     bson.M{"$first": "$usuario.nombre_usuario"},
			"nombre_restaurante": bson.M{"$first": "$restaurante.nombre_restaurante"},
			"total":              bson.M{"$first": "$total"},
			"estado":             bson.M{"$first": "$estado"},
			"productos": bson.M{"$push": bson.M{
				"nombre":          "$producto_info.nombre",
				"cantidad":        "$productos.cantidad",
				"precio_unitario": "$productos.precio_unitario",
			}},
		}}},
	}
}

func (s *Store) GetOrderDetail(ctx context.Context, id primitive.ObjectID) (*models.OrderDetail, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColOrders).Aggregate(ctx, orderDetailPipeline(id))
	if err != nil {
		return nil, err
	}
	var details []models.OrderDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

func (s *Store) ListUserOrders(ctx context.Context, userID primitive.ObjectID, r DateRange, p Page) ([]models.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := bson.M{"id_usuario": userID}
	if dates := dateRangeQuery(r); dates != nil {
		query["fecha_pedido"] = dates
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "fecha_pedido", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip).
		SetLimit(p.Limit)

	cursor, err := s.collection(ColOrders).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func recentReceivedPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"id_usuario": userID, "estado": models.OrderStatusReceived}}},
		{{Key: "$sort", Value: bson.D{{Key: "fecha_pedido", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$limit", Value: recentOrderCount}},
		{{Key: "$lookup", Value: bson.M{"from": ColRestaurants, "localField": "id_restaurante", "foreignField": "_id", "as": "restaurante"}}},
		{{Key: "$unwind", Value: "$restaurante"}},
		{{Key: "$project", Value: bson.M{
			"fecha_pedido":       1,
			"total":              1,
			"estado":             1,
			"nombre_restaurante": "$restaurante.nombre_restaurante",
		}}},
	}
}

// ListRecentReceivedOrders returns the user's 5 most recent orders already
// in "Recibido", each with its restaurant name.
func (s *Store) ListRecentReceivedOrders(ctx context.Context, userID primitive.ObjectID) ([]models.RecentOrderRow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColOrders).Aggregate(ctx, recentReceivedPipeline(userID))
	if err != nil {
		return nil, err
	}
	rows := []models.RecentOrderRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateOrder verifies every reference, snapshots unit prices from the
// product documents and recomputes the total; a client-supplied total is
// never trusted.
func (s *Store) CreateOrder(ctx context.Context, userID primitive.ObjectID, in CreateOrderInput) (*models.Order, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	restaurantID, err := primitive.ObjectIDFromHex(in.RestaurantID)
	if err != nil {
		return nil, validationErr("invalid restaurant id %q", in.RestaurantID)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.requireExists(ctx, ColUsers, bson.M{"_id": userID}, "user"); err != nil {
		return nil, err
	}
	if err := s.requireExists(ctx, ColRestaurants, bson.M{"_id": restaurantID, "esActivo": true}, "active restaurant"); err != nil {
		return nil, err
	}

	var (
		items []models.OrderItem
		total float64
	)
	for _, item := range in.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, validationErr("invalid product id %q", item.ProductID)
		}

		var product models.Product
		err = s.collection(ColProducts).FindOne(ctx, bson.M{"_id": productID, "esActivo": true}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, validationErr("product %s does not exist or is inactive", item.ProductID)
			}
			return nil, err
		}

		items = append(items, models.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		total += product.Price * float64(item.Quantity)
	}

	order := models.Order{
		ID:           primitive.NewObjectID(),
		Date:         time.Now().UTC(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Items:        items,
		Status:       models.OrderStatusInKitchen,
		Total:        total,
	}
	if _, err := s.collection(ColOrders).InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus enforces the transition table and returns the status
// the order held before the update. Re-applying the current status is a
// no-op success, which keeps the operation idempotent.
func (s *Store) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (models.OrderStatus, error) {
	if !status.Valid() {
		return "", validationErr("unknown order status %q", status)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var order models.Order
	err := s.collection(ColOrders).FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrNotFound
		}
		return "", err
	}
	if !order.Status.CanTransitionTo(status) {
		return "", validationErr("cannot move order from %q to %q", order.Status, status)
	}

	_, err = s.collection(ColOrders).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"estado": status}})
	if err != nil {
		return "", err
	}
	return order.Status, nil
}
