package store

import (
	"testing"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageKeys(p mongo.Pipeline) []string {
	keys := make([]string, 0, len(p))
	for _, stage := range p {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func stageValue(t *testing.T, p mongo.Pipeline, index int, key string) interface{} {
	t.Helper()
	require.Greater(t, len(p), index)
	require.Equal(t, key, p[index][0].Key)
	return p[index][0].Value
}

func TestReviewDetailPipelineShape(t *testing.T) {
	id := primitive.NewObjectID()
	p := reviewDetailPipeline(id)

	assert.Equal(t, []string{
		"$match",
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$lookup", "$unwind",
		"$unwind",
		"$lookup", "$unwind",
		"$group",
	}, stageKeys(p))

	match := stageValue(t, p, 0, "$match").(bson.M)
	assert.Equal(t, id, match["_id"])

	// Every join unwinds, so a dangling reference drops the row.
	group := stageValue(t, p, 10, "$group").(bson.M)
	assert.Contains(t, group, "nombre_usuario")
	assert.Contains(t, group, "nombre_restaurante")
	assert.Contains(t, group, "productos")
}

func TestOrderListPipeline(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	p := orderListPipeline(DateRange{From: from, To: to}, Page{Skip: 20, Limit: 10})

	assert.Equal(t, []string{
		"$match", "$lookup", "$unwind", "$lookup", "$unwind",
		"$project", "$sort", "$skip", "$limit",
	}, stageKeys(p))

	match := stageValue(t, p, 0, "$match").(bson.M)
	dates := match["fecha_pedido"].(bson.M)
	assert.Equal(t, from, dates["$gte"])
	assert.Equal(t, to, dates["$lte"])

	sort := stageValue(t, p, 6, "$sort").(bson.D)
	require.Len(t, sort, 2)
	assert.Equal(t, "fecha_pedido", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	// Ties break by id so pagination is stable.
	assert.Equal(t, "_id", sort[1].Key)

	assert.Equal(t, int64(20), stageValue(t, p, 7, "$skip"))
	assert.Equal(t, int64(10), stageValue(t, p, 8, "$limit"))
}

func TestOrderListPipelineOpenRange(t *testing.T) {
	p := orderListPipeline(DateRange{}, Page{Skip: 0, Limit: 10})
	match := stageValue(t, p, 0, "$match").(bson.M)
	assert.Empty(t, match)
}

func TestRecentReceivedPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	p := recentReceivedPipeline(userID)

	assert.Equal(t, []string{
		"$match", "$sort", "$limit", "$lookup", "$unwind", "$project",
	}, stageKeys(p))

	match := stageValue(t, p, 0, "$match").(bson.M)
	assert.Equal(t, userID, match["id_usuario"])
	assert.Equal(t, models.OrderStatusReceived, match["estado"])

	assert.Equal(t, recentOrderCount, stageValue(t, p, 2, "$limit"))
}

func TestUserReviewsPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	p := userReviewsPipeline(userID, Page{Skip: 10, Limit: 5})

	assert.Equal(t, []string{
		"$match", "$lookup", "$unwind", "$lookup", "$unwind",
		"$project", "$sort", "$skip", "$limit",
	}, stageKeys(p))

	project := stageValue(t, p, 5, "$project").(bson.M)
	assert.Equal(t, "$restaurante.nombre_restaurante", project["nombre_restaurante"])
	assert.Equal(t, "$pedido.fecha_pedido", project["fecha_pedido"])
}

func TestDistinctIngredientsPipeline(t *testing.T) {
	p := distinctIngredientsPipeline()

	assert.Equal(t, []string{"$match", "$unwind", "$group", "$project"}, stageKeys(p))

	match := stageValue(t, p, 0, "$match").(bson.M)
	assert.Equal(t, bson.M{"$exists": true}, match["ingredientes"])

	group := stageValue(t, p, 2, "$group").(bson.M)
	assert.Equal(t, bson.M{"$addToSet": "$ingredientes"}, group["ingredientes_unicos"])
}

func TestSearchReviewsQueryShape(t *testing.T) {
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "chocolate delicioso"}},
		searchReviewsFilter("chocolate delicioso"))

	opts := searchReviewsOptions(Page{Skip: 10, Limit: 10})

	projection := opts.Projection.(bson.M)
	assert.Equal(t, bson.M{"$meta": "textScore"}, projection["score"])
	assert.Equal(t, 1, projection["titulo"])
	assert.Equal(t, 1, projection["descripcion"])

	sort := opts.Sort.(bson.D)
	require.Len(t, sort, 2)
	assert.Equal(t, "score", sort[0].Key)
	assert.Equal(t, bson.M{"$meta": "textScore"}, sort[0].Value)
	// Ties break by id so pagination is stable.
	assert.Equal(t, "_id", sort[1].Key)
	assert.Equal(t, -1, sort[1].Value)

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(10), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestReviewFilterQuery(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	q := ReviewFilter{Score: 5, Dates: DateRange{From: from}}.query()
	assert.Equal(t, 5, q["puntuacion"])
	assert.Equal(t, bson.M{"$gte": from}, q["fecha"])

	q = ReviewFilter{}.query()
	assert.Empty(t, q)
}
