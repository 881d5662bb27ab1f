package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"nombre" json:"nombre"`
	Description string              `bson:"descripcion" json:"descripcion"`
	PrepMinutes int                 `bson:"tiempo_preparacion" json:"tiempo_preparacion"`
	Ingredients []string            `bson:"ingredientes,omitempty" json:"ingredientes,omitempty"`
	Image       *primitive.ObjectID `bson:"imagen" json:"imagen"` // GridFS file id, null when no image
	Active      bool                `bson:"esActivo" json:"esActivo"`
	Price       float64             `bson:"precio" json:"precio"`
}
