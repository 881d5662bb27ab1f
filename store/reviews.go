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

// ReviewFilter narrows the admin review listing. Score 0 means any score.
type ReviewFilter struct {
	Score int
	Dates DateRange
}

type CreateReviewInput struct {
	Title        string `json:"titulo" validate:"required"`
	Description  string `json:"descripcion"`
	Score        int    `json:"puntuacion" validate:"required,min=1,max=5"`
	RestaurantID string `json:"id_restaurante" validate:"required"`
	OrderID      string `json:"id_pedido" validate:"required"`
}

type UpdateReviewInput struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descripcion"`
	Score       *int    `json:"puntuacion" validate:"omitempty,min=1,max=5"`
}

func (f ReviewFilter) query() bson.M {
	q := bson.M{}
	if f.Score > 0 {
		q["puntuacion"] = f.Score
	}
	if dates := dateRangeQuery(f.Dates); dates != nil {
		q["fecha"] = dates
	}
	return q
}

func dateRangeQuery(r DateRange) bson.M {
	if r.IsZero() {
		return nil
	}
	q := bson.M{}
	if !r.From.IsZero() {
		q["$gte"] = r.From
	}
	if !r.To.IsZero() {
		q["$lte"] = r.To
	}
	return q
}

func (s *Store) ListReviews(ctx context.Context, f ReviewFilter, p Page) ([]models.ReviewRow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"titulo": 1, "descripcion": 1, "puntuacion": 1, "fecha": 1}).
		SetSort(bson.D{{Key: "fecha", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip).
		SetLimit(p.Limit)

	cursor, err := s.collection(ColReviews).Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	rows := []models.ReviewRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func searchReviewsFilter(query string) bson.M {
	return bson.M{"$text": bson.M{"$search": query}}
}

func searchReviewsOptions(p Page) *options.FindOptions {
	return options.Find().
		SetProjection(bson.M{
			"titulo":      1,
			"descripcion": 1,
			"puntuacion":  1,
			"fecha":       1,
			"score":       bson.M{"$meta": "textScore"},
		}).
		// Relevance first; equal scores fall back to id order so
		// skip/limit pages stay stable.
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "_id", Value: -1},
		}).
		SetSkip(p.Skip).
		SetLimit(p.Limit)
}

// SearchReviews runs a $text query over titulo+descripcion, ranked by the
// text relevance score descending.
func (s *Store) SearchReviews(ctx context.Context, query string, p Page) ([]models.ReviewRow, error) {
	if query == "" {
		return nil, validationErr("search query is required")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColReviews).Find(ctx, searchReviewsFilter(query), searchReviewsOptions(p))
	if err != nil {
		return nil, err
	}
	rows := []models.ReviewRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// reviewDetailPipeline joins a review with its user, restaurant, order and
// the order's products, flattened into one document. $unwind after each
// $lookup gives inner-join semantics: a dangling reference drops the row.
func reviewDetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{"from": ColUsers, "localField": "id_usuario", "foreignField": "_id", "as": "usuario"}}},
		{{Key: "$unwind", Value: "$usuario"}},
		{{Key: "$lookup", Value: bson.M{"from": ColRestaurants, "localField": "id_restaurante", "foreignField": "_id", "as": "restaurante"}}},
		{{Key: "$unwind", Value: "$restaurante"}},
		{{Key: "$lookup", Value: bson.M{"from": ColOrders, "localField": "id_pedido", "foreignField": "_id", "as": "pedido"}}},
		{{Key: "$unwind", Value: "$pedido"}},
		{{Key: "$unwind", Value: "$pedido.productos"}},
		{{Key: "$lookup", Value: bson.M{"from": ColProducts, "localField": "pedido.productos.producto_id", "foreignField": "_id", "as": "producto_info"}}},
		{{Key: "$unwind", Value: "$producto_info"}},
		{{Key: "$group", Value: bson.M{
			"_id":                "$_id",
			"titulo":             bson.M{"$first": "$titulo"},
			"descripcion":        bson.M{"$first": "$descripcion"},
			"puntuacion":         bson.M{"$first": "$puntuacion"},
			"fecha":              bson.M{"$first": "$fecha"},
			"nombre_usuario":     bson.M{"$first": "$usuario.nombre_usuario"},
			"nombre_restaurante": bson.M{"$first": "$restaurante.nombre_restaurante"},
			"total":              bson.M{"$first": "$pedido.total"},
			"productos": bson.M{"$push": bson.M{
				"nombre":          "$producto_info.nombre",
				"cantidad":        "$pedido.productos.cantidad",
				"precio_unitario": "$pedido.productos.precio_unitario",
			}},
		}}},
	}
}

func (s *Store) GetReviewDetail(ctx context.Context, id primitive.ObjectID) (*models.ReviewDetail, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColReviews).Aggregate(ctx, reviewDetailPipeline(id))
	if err != nil {
		return nil, err
	}
	var details []models.ReviewDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

func userReviewsPipeline(userID primitive.ObjectID, p Page) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"id_usuario": userID}}},
		{{Key: "$lookup", Value: bson.M{"from": ColRestaurants, "localField": "id_restaurante", "foreignField": "_id", "as": "restaurante"}}},
		{{Key: "$unwind", Value: "$restaurante"}},
		{{Key: "$lookup", Value: bson.M{"from": ColOrders, "localField": "id_pedido", "foreignField": "_id", "as": "pedido"}}},
		{{Key: "$unwind", Value: "$pedido"}},
		{{Key: "$project", Value: bson.M{
			"titulo":             1,
			"descripcion":        1,
			"puntuacion":         1,
			"fecha":              1,
			"nombre_restaurante": "$restaurante.nombre_restaurante",
			"fecha_pedido":       "$pedido.fecha_pedido",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "fecha", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: p.Skip}},
		{{Key: "$limit", Value: p.Limit}},
	}
}

func (s *Store) ListUserReviews(ctx context.Context, userID primitive.ObjectID, p Page) ([]models.UserReviewRow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.collection(ColReviews).Aggregate(ctx, userReviewsPipeline(userID, p))
	if err != nil {
		return nil, err
	}
	rows := []models.UserReviewRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) CreateReview(ctx context.Context, userID primitive.ObjectID, in CreateReviewInput) (*models.Review, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	restaurantID, err := primitive.ObjectIDFromHex(in.RestaurantID)
	if err != nil {
		return nil, validationErr("invalid restaurant id %q", in.RestaurantID)
	}
	orderID, err := primitive.ObjectIDFromHex(in.OrderID)
	if err != nil {
		return nil, validationErr("invalid order id %q", in.OrderID)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.requireExists(ctx, ColRestaurants, bson.M{"_id": restaurantID}, "restaurant"); err != nil {
		return nil, err
	}
	// The reviewed order must belong to the reviewer.
	if err := s.requireExists(ctx, ColOrders, bson.M{"_id": orderID, "id_usuario": userID}, "order"); err != nil {
		return nil, err
	}

	review := models.Review{
		ID:           primitive.NewObjectID(),
		Title:        in.Title,
		Description:  in.Description,
		Score:        in.Score,
		Date:         time.Now().UTC(),
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderID:      orderID,
	}
	if _, err := s.collection(ColReviews).InsertOne(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Store) UpdateReview(ctx context.Context, id primitive.ObjectID, in UpdateReviewInput) error {
	if err := checkInput(in); err != nil {
		return err
	}

	set := bson.M{}
	if in.Title != nil {
		set["titulo"] = *in.Title
	}
	if in.Description != nil {
		set["descripcion"] = *in.Description
	}
	if in.Score != nil {
		set["puntuacion"] = *in.Score
	}
	if len(set) == 0 {
		return validationErr("no fields to update")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := s.collection(ColReviews).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := s.collection(ColReviews).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReviews removes every review whose id is in ids. Ids that do not
// exist are silently skipped; the returned count is the number deleted.
func (s *Store) DeleteReviews(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, validationErr("no review ids given")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := s.collection(ColReviews).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// requireExists maps a failed reference lookup to a validation error so
// writes with dangling references are rejected before insert.
func (s *Store) requireExists(ctx context.Context, collection string, filter bson.M, what string) error {
	err := s.collection(collection).FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return validationErr("%s does not exist", what)
	}
	return err
}
