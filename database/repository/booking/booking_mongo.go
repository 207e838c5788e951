package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

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
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hotel_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update modifies an existing booking document.
func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	filter := bson.M{"id": booking.ID}
	update := bson.M{"$set": booking}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", booking.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// FindByReference retrieves a booking by its reference, or (nil, nil) when absent.
func (r *MongoBookingRepo) FindByReference(reference string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"booking_reference": reference}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with reference %s: %w", reference, err)
	}
	return &booking, nil
}

// CountCreatedSince counts bookings created at or after the given time.
func (r *MongoBookingRepo) CountCreatedSince(t time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": t}})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}
