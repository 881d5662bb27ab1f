package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Denormalized read shapes. Each mirrors the output of one aggregation
// pipeline; joins use inner-join semantics, so a dangling reference drops
// the whole row instead of leaving a null field behind.

type LineItem struct {
	Name      string  `bson:"nombre" json:"nombre"`
	Quantity  int     `bson:"cantidad" json:"cantidad"`
	UnitPrice float64 `bson:"precio_unitario" json:"precio_unitario"`
}

type ReviewRow struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"titulo" json:"titulo"`
	Description string             `bson:"descripcion" json:"descripcion"`
	Score       int                `bson:"puntuacion" json:"puntuacion"`
	Date        time.Time          `bson:"fecha" json:"fecha"`
	// TextScore is only populated by the free-text search projection.
	TextScore float64 `bson:"score,omitempty" json:"score,omitempty"`
}

type ReviewDetail struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Title          string             `bson:"titulo" json:"titulo"`
	Description    string             `bson:"descripcion" json:"descripcion"`
	Score          int                `bson:"puntuacion" json:"puntuacion"`
	Date           time.Time          `bson:"fecha" json:"fecha"`
	Username       string             `bson:"nombre_usuario" json:"nombre_usuario"`
	RestaurantName string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Total          float64            `bson:"total" json:"total"`
	Products       []LineItem         `bson:"productos" json:"productos"`
}

type UserReviewRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Title          string             `bson:"titulo" json:"titulo"`
	Description    string             `bson:"descripcion" json:"descripcion"`
	Score          int                `bson:"puntuacion" json:"puntuacion"`
	Date           time.Time          `bson:"fecha" json:"fecha"`
	RestaurantName string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	OrderDate      time.Time          `bson:"fecha_pedido" json:"fecha_pedido"`
}

type OrderRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Date           time.Time          `bson:"fecha_pedido" json:"fecha_pedido"`
	Username       string             `bson:"nombre_usuario" json:"nombre_usuario"`
	RestaurantName string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Total          float64            `bson:"total" json:"total"`
	Status         OrderStatus        `bson:"estado" json:"estado"`
}

type OrderDetail struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Date           time.Time          `bson:"fecha_pedido" json:"fecha_pedido"`
	Username       string             `bson:"nombre_usuario" json:"nombre_usuario"`
	RestaurantName string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Total          float64            `bson:"total" json:"total"`
	Status         OrderStatus        `bson:"estado" json:"estado"`
	Products       []LineItem         `bson:"productos" json:"productos"`
}

type RecentOrderRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Date           time.Time          `bson:"fecha_pedido" json:"fecha_pedido"`
	RestaurantName string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Total          float64            `bson:"total" json:"total"`
	Status         OrderStatus        `bson:"estado" json:"estado"`
}

type ProductRow struct {
	ID    primitive.ObjectID  `bson:"_id" json:"id"`
	Name  string              `bson:"nombre" json:"nombre"`
	Image *primitive.ObjectID `bson:"imagen" json:"imagen"`
	Price float64             `bson:"precio" json:"precio"`
}

type RestaurantRow struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Location Location           `bson:"ubicacion" json:"ubicacion"`
	Phones   []string           `bson:"telefono" json:"telefono"`
}

type RestaurantSchedule struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Hours Hours              `bson:"horarios_de_atencion" json:"horarios_de_atencion"`
}
