package store

import (
	"context"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateProductInput struct {
	Name        string              `json:"nombre" validate:"required"`
	Description string              `json:"descripcion"`
	PrepMinutes int                 `json:"tiempo_preparacion" validate:"gte=0"`
	Ingredients []string            `json:"ingredientes"`
	Image       *primitive.ObjectID `json:"imagen"`
	Price       float64             `json:"precio" validate:"gte=0"`
}

type UpdateProductInput struct {
	Name        *string   `json:"nombre"`
	Description *string   `json:"descripcion"`
	PrepMinutes *int      `json:"tiempo_preparacion" validate:"omitempty,gte=0"`
	Ingredients *[]string `json:"ingredientes"`
	Price       *float64  `json:"precio" validate:"omitempty,gte=0"`
}

var productSummary = bson.M{"nombre": 1, "imagen": 1, "precio": 1}

func (s *Store) listProductRows(ctx context.Context, query bson.M) ([]models.ProductRow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(productSummary).
		SetSort(bson.D{{Key: "nombre", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.collection(ColProducts).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	rows := []models.ProductRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListProductSummaries is the admin catalog: every product, active or not.
func (s *Store) ListProductSummaries(ctx context.Context) ([]models.ProductRow, error) {
	return s.listProductRows(ctx, bson.M{})
}

// ListActiveProducts is the public menu: active products only.
func (s *Store) ListActiveProducts(ctx context.Context) ([]models.ProductRow, error) {
	return s.listProductRows(ctx, bson.M{"esActivo": true})
}

func (s *Store) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := s.collection(ColProducts).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Description: in.Description,
		PrepMinutes: in.PrepMinutes,
		Ingredients: in.Ingredients,
		Image:       in.Image,
		Active:      true,
		Price:       in.Price,
	}
	if _, err := s.collection(ColProducts).InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id primitive.ObjectID, in UpdateProductInput) error {
	if err := checkInput(in); err != nil {
		return err
	}

	set := bson.M{}
	if in.Name != nil {
		set["nombre"] = *in.Name
	}
	if in.Description != nil {
		set["descripcion"] = *in.Description
	}
	if in.PrepMinutes != nil {
		set["tiempo_preparacion"] = *in.PrepMinutes
	}
	if in.Ingredients != nil {
		set["ingredientes"] = *in.Ingredients
	}
	if in.Price != nil {
		set["precio"] = *in.Price
	}
	if len(set) == 0 {
		return validationErr("no fields to update")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := s.collection(ColProducts).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// deactivatedCount reports how many of the given ids ended up inactive.
// Matched is the right measure: an id that was already inactive satisfies
// the operation just as well as one the update flipped.
func deactivatedCount(result *mongo.UpdateResult) int64 {
	return result.MatchedCount
}

// DeactivateProducts flips esActivo off for every matching id. Ids that do
// not exist are silently skipped, matching updateMany semantics.
func (s *Store) DeactivateProducts(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, validationErr("no product ids given")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := s.collection(ColProducts).UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"esActivo": false}},
	)
	if err != nil {
		return 0, err
	}
	return deactivatedCount(result), nil
}

func distinctIngredientsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ingredientes": bson.M{"$exists": true}}}},
		{{Key: "$unwind", Value: "$ingredientes"}},
		{{Key: "$group", Value: bson.M{
			"_id":                 nil,
			"ingredientes_unicos": bson.M{"$addToSet": "$ingredientes"},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "ingredientes_unicos": 1}}},
	}
}

// DistinctIngredients aggregates the unique ingredient values across all
// products that carry an ingredient list.
func (s *Store) DistinctIngredients(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColProducts).Aggregate(ctx, distinctIngredientsPipeline())
	if err != nil {
		return nil, err
	}
	var results []struct {
		Ingredients []string `bson:"ingredientes_unicos"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []string{}, nil
	}
	return results[0].Ingredients, nil
}
