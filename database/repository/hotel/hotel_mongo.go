package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"hotelbot/config"
	"hotelbot/database"
	"hotelbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("hotels")
	repo := &MongoHotelRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "price_per_night", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new hotel document.
func (r *MongoHotelRepo) Create(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	hotel.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, hotel)
	if err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel by its unique ID.
func (r *MongoHotelRepo) GetByID(id string) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

// Count returns the number of hotel documents.
func (r *MongoHotelRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	return n, nil
}
