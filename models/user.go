package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserType string

const (
	UserTypeClient UserType = "cliente"
	UserTypeAdmin  UserType = "administrador"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"nombre_usuario" json:"nombre_usuario"`
	Password string             `bson:"contrasenia" json:"-"` // bcrypt hash, never serialized
	Type     UserType           `bson:"tipo_usuario" json:"tipo_usuario"`
}
