package store

import (
	"context"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUserByUsername fetches the credentials projection used by login:
// username, password hash and user type.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{
		"nombre_usuario": 1,
		"contrasenia":    1,
		"tipo_usuario":   1,
	})

	var user models.User
	err := s.collection(ColUsers).FindOne(ctx, bson.M{"nombre_usuario": username}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
