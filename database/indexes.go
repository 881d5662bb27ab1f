package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the index catalog the query layer depends on.
// CreateMany is idempotent: indexes that already exist are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	catalog := map[string][]mongo.IndexModel{
		"usuarios": {
			{Keys: bson.D{{Key: "nombre_usuario", Value: 1}}},
		},
		"productos": {
			{Keys: bson.D{{Key: "esActivo", Value: 1}}},
			{Keys: bson.D{{Key: "nombre", Value: 1}}},
			// Multikey: one entry per ingredient list element.
			{Keys: bson.D{{Key: "ingredientes", Value: 1}}},
		},
		"restaurantes": {
			{Keys: bson.D{{Key: "nombre_restaurante", Value: 1}}},
		},
		"resenias": {
			{Keys: bson.D{{Key: "puntuacion", Value: 1}, {Key: "fecha", Value: 1}}},
			{Keys: bson.D{{Key: "id_usuario", Value: 1}, {Key: "fecha", Value: 1}}},
			{Keys: bson.D{{Key: "titulo", Value: "text"}, {Key: "descripcion", Value: "text"}}},
		},
		"pedidos": {
			{Keys: bson.D{{Key: "fecha_pedido", Value: 1}, {Key: "estado", Value: 1}}},
			{Keys: bson.D{{Key: "id_usuario", Value: 1}, {Key: "fecha_pedido", Value: 1}}},
		},
	}

	for collection, indexes := range catalog {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
