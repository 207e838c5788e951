// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"hotelbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var checkInAscending = options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}})

// FindByStatus retrieves all bookings with the given status.
func (r *MongoBookingRepo) FindByStatus(status models.BookingStatus) ([]models.Booking, error) {
	return r.find(bson.M{"status": status}, nil)
}

// FindByHotel retrieves all bookings for a hotel.
func (r *MongoBookingRepo) FindByHotel(hotelID string) ([]models.Booking, error) {
	return r.find(bson.M{"hotel_id": hotelID}, nil)
}

// FindByUser retrieves all bookings for a user.
func (r *MongoBookingRepo) FindByUser(userID string) ([]models.Booking, error) {
	return r.find(bson.M{"user_id": userID}, nil)
}

// FindActiveByUser retrieves a user's confirmed or modified bookings ordered
// by check-in ascending.
func (r *MongoBookingRepo) FindActiveByUser(userID string) ([]models.Booking, error) {
	filter := bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": []models.BookingStatus{models.StatusConfirmed, models.StatusModified}},
	}
	return r.find(filter, checkInAscending)
}

// FindOverlapping retrieves non-cancelled bookings for a hotel whose stay
// overlaps the [start, end] range.
func (r *MongoBookingRepo) FindOverlapping(hotelID string, start, end time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"hotel_id":  hotelID,
		"status":    bson.M{"$ne": models.StatusCancelled},
		"check_in":  bson.M{"$lte": end},
		"check_out": bson.M{"$gte": start},
	}
	return r.find(filter, nil)
}

// FindUpcoming retrieves confirmed bookings checking in on or after the given
// date, ordered by check-in ascending.
func (r *MongoBookingRepo) FindUpcoming(from time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"check_in": bson.M{"$gte": from},
		"status":   models.StatusConfirmed,
	}
	return r.find(filter, checkInAscending)
}

func (r *MongoBookingRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
