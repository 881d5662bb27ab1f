// Command seed loads the sample catalog into MongoDB: restaurants, users
// (passwords bcrypt-hashed), products, and randomized orders and reviews.
// Reviews are only generated for orders already in "Recibido".
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/config"
	"github.com/dulce-tentacion/pasteleria-backend/database"
	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/dulce-tentacion/pasteleria-backend/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Most generated orders are already received so that reviews have
// something to attach to.
var statusWeights = []struct {
	status models.OrderStatus
	weight int
}{
	{models.OrderStatusInKitchen, 2},
	{models.OrderStatusOnTheWay, 2},
	{models.OrderStatusReceived, 6},
}

func main() {
	orderCount := flag.Int("orders", 40, "number of orders to generate")
	reviewCount := flag.Int("reviews", 20, "number of reviews to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	config.LoadEnv()
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	db := database.DB

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	restaurantIDs := seedRestaurants(ctx, db)
	userIDs := seedUsers(ctx, db)
	productIDs := seedProducts(ctx, db)
	received := seedOrders(ctx, db, rng, *orderCount, userIDs, restaurantIDs, productIDs)
	seedReviews(ctx, db, rng, *reviewCount, received)

	log.Println("Seed complete")
}

func seedRestaurants(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(sampleRestaurants))
	for _, r := range sampleRestaurants {
		r.ID = primitive.NewObjectID()
		if _, err := db.Collection(store.ColRestaurants).InsertOne(ctx, r); err != nil {
			log.Fatal("Failed to insert restaurant:", err)
		}
		ids = append(ids, r.ID)
	}
	log.Printf("Inserted %d restaurants", len(ids))
	return ids
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	var clientIDs []primitive.ObjectID
	for _, u := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		user := models.User{
			ID:       primitive.NewObjectID(),
			Username: u.Username,
			Password: string(hash),
			Type:     u.Type,
		}
		if _, err := db.Collection(store.ColUsers).InsertOne(ctx, user); err != nil {
			log.Fatal("Failed to insert user:", err)
		}
		if u.Type == models.UserTypeClient {
			clientIDs = append(clientIDs, user.ID)
		}
	}
	log.Printf("Inserted %d users", len(sampleUsers))
	return clientIDs
}

func seedProducts(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		p.ID = primitive.NewObjectID()
		if _, err := db.Collection(store.ColProducts).InsertOne(ctx, p); err != nil {
			log.Fatal("Failed to insert product:", err)
		}
		ids = append(ids, p.ID)
	}
	log.Printf("Inserted %d products", len(ids))
	return ids
}

func pickStatus(rng *rand.Rand) models.OrderStatus {
	total := 0
	for _, w := range statusWeights {
		total += w.weight
	}
	n := rng.Intn(total)
	for _, w := range statusWeights {
		if n < w.weight {
			return w.status
		}
		n -= w.weight
	}
	return models.OrderStatusReceived
}

// seedOrders generates randomized orders over the last 90 days and
// returns the ones in "Recibido", which are eligible for reviews.
func seedOrders(ctx context.Context, db *mongo.Database, rng *rand.Rand, count int, userIDs, restaurantIDs, productIDs []primitive.ObjectID) []models.Order {
	prices := loadPrices(ctx, db, productIDs)

	var received []models.Order
	for i := 0; i < count; i++ {
		itemCount := 1 + rng.Intn(3)
		var (
			items []models.OrderItem
			total float64
		)
		for j := 0; j < itemCount; j++ {
			productID := productIDs[rng.Intn(len(productIDs))]
			quantity := 1 + rng.Intn(3)
			unitPrice := prices[productID]
			items = append(items, models.OrderItem{
				ProductID: productID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
			})
			total += unitPrice * float64(quantity)
		}

		order := models.Order{
			ID:           primitive.NewObjectID(),
			Date:         time.Now().UTC().AddDate(0, 0, -rng.Intn(90)),
			UserID:       userIDs[rng.Intn(len(userIDs))],
			RestaurantID: restaurantIDs[rng.Intn(len(restaurantIDs))],
			Items:        items,
			Status:       pickStatus(rng),
			Total:        total,
		}
		if _, err := db.Collection(store.ColOrders).InsertOne(ctx, order); err != nil {
			log.Fatal("Failed to insert order:", err)
		}
		if order.Status == models.OrderStatusReceived {
			received = append(received, order)
		}
	}
	log.Printf("Inserted %d orders (%d received)", count, len(received))
	return received
}

func loadPrices(ctx context.Context, db *mongo.Database, productIDs []primitive.ObjectID) map[primitive.ObjectID]float64 {
	cursor, err := db.Collection(store.ColProducts).Find(ctx, bson.M{"_id": bson.M{"$in": productIDs}})
	if err != nil {
		log.Fatal("Failed to load products:", err)
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Fatal("Failed to decode products:", err)
	}
	prices := make(map[primitive.ObjectID]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	return prices
}

func seedReviews(ctx context.Context, db *mongo.Database, rng *rand.Rand, count int, received []models.Order) {
	if len(received) == 0 {
		log.Println("No received orders, skipping reviews")
		return
	}
	if count > len(received) {
		count = len(received)
	}

	// One review per received order at most.
	rng.Shuffle(len(received), func(i, j int) {
		received[i], received[j] = received[j], received[i]
	})

	for i := 0; i < count; i++ {
		order := received[i]
		review := models.Review{
			ID:           primitive.NewObjectID(),
			Title:        reviewTitles[rng.Intn(len(reviewTitles))],
			Description:  reviewDescriptions[rng.Intn(len(reviewDescriptions))],
			Score:        1 + rng.Intn(5),
			Date:         order.Date.AddDate(0, 0, 1+rng.Intn(5)),
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			OrderID:      order.ID,
		}
		if _, err := db.Collection(store.ColReviews).InsertOne(ctx, review); err != nil {
			log.Fatal("Failed to insert review:", err)
		}
	}
	log.Printf("Inserted %d reviews", count)
}
