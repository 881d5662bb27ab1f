package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Location struct {
	PostalCode string `bson:"codigo_postal" json:"codigo_postal"`
	Street     string `bson:"calle" json:"calle"`
	Zone       string `bson:"zona" json:"zona"`
	Avenue     string `bson:"avenida" json:"avenida"`
}

type Hours struct {
	Weekdays string `bson:"entre_semana" json:"entre_semana"`
	Weekends string `bson:"fines_de_semana" json:"fines_de_semana"`
	Holidays string `bson:"asueto" json:"asueto"`
}

type Restaurant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"nombre_restaurante" json:"nombre_restaurante"`
	Location Location           `bson:"ubicacion" json:"ubicacion"`
	Phones   []string           `bson:"telefono" json:"telefono"`
	Hours    Hours              `bson:"horarios_de_atencion" json:"horarios_de_atencion"`
	Active   bool               `bson:"esActivo" json:"esActivo"`
}
