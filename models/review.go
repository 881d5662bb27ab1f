package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"titulo" json:"titulo"`
	Description  string             `bson:"descripcion" json:"descripcion"`
	Score        int                `bson:"puntuacion" json:"puntuacion"`
	Date         time.Time          `bson:"fecha" json:"fecha"`
	UserID       primitive.ObjectID `bson:"id_usuario" json:"id_usuario"`
	RestaurantID primitive.ObjectID `bson:"id_restaurante" json:"id_restaurante"`
	OrderID      primitive.ObjectID `bson:"id_pedido" json:"id_pedido"`
}
