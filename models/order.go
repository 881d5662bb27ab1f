package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusInKitchen OrderStatus = "En cocina"
	OrderStatusOnTheWay  OrderStatus = "En camino"
	OrderStatusReceived  OrderStatus = "Recibido"
	OrderStatusCancelled OrderStatus = "Cancelado"
)

// statusTransitions is the allowed forward flow of an order. The same
// status may always be re-applied, which keeps status updates idempotent.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusInKitchen: {OrderStatusOnTheWay, OrderStatusCancelled},
	OrderStatusOnTheWay:  {OrderStatusReceived},
	OrderStatusReceived:  {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"producto_id" json:"producto_id"`
	Quantity  int                `bson:"cantidad" json:"cantidad"`
	UnitPrice float64            `bson:"precio_unitario" json:"precio_unitario"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date         time.Time          `bson:"fecha_pedido" json:"fecha_pedido"`
	UserID       primitive.ObjectID `bson:"id_usuario" json:"id_usuario"`
	RestaurantID primitive.ObjectID `bson:"id_restaurante" json:"id_restaurante"`
	Items        []OrderItem        `bson:"productos" json:"productos"`
	Status       OrderStatus        `bson:"estado" json:"estado"`
	Total        float64            `bson:"total" json:"total"`
}
