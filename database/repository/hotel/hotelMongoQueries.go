// File: database/repository/hotel/hotelMongoQueries.go
package hotelRepo

import (
	"fmt"
	"regexp"
	"time"

	"hotelbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// containsRegex builds a case-insensitive substring filter.
func containsRegex(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// exactRegex builds a case-insensitive whole-value filter.
func exactRegex(term string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(term) + "$", "$options": "i"}
}

var priceAscending = options.Find().SetSort(bson.D{{Key: "price_per_night", Value: 1}})

// FindAvailableByCity retrieves available hotels whose city contains the term.
func (r *MongoHotelRepo) FindAvailableByCity(city string) ([]models.Hotel, error) {
	filter := bson.M{
		"city":         containsRegex(city),
		"availability": true,
	}
	return r.find(filter, priceAscending)
}

// FindByCity retrieves hotels matching the city exactly, any availability.
func (r *MongoHotelRepo) FindByCity(city string) ([]models.Hotel, error) {
	return r.find(bson.M{"city": exactRegex(city)}, priceAscending)
}

// FindAvailableByPriceRange retrieves available hotels in a city within the
// inclusive price range.
func (r *MongoHotelRepo) FindAvailableByPriceRange(city string, minPrice, maxPrice int) ([]models.Hotel, error) {
	filter := bson.M{
		"city":            containsRegex(city),
		"availability":    true,
		"price_per_night": bson.M{"$gte": minPrice, "$lte": maxPrice},
	}
	return r.find(filter, priceAscending)
}

// FindAvailableByRoomType retrieves available hotels in a city with the given
// room type.
func (r *MongoHotelRepo) FindAvailableByRoomType(city, roomType string) ([]models.Hotel, error) {
	filter := bson.M{
		"city":         containsRegex(city),
		"availability": true,
		"room_type":    exactRegex(roomType),
	}
	return r.find(filter, priceAscending)
}

// FindAllAvailable retrieves every available hotel.
func (r *MongoHotelRepo) FindAllAvailable() ([]models.Hotel, error) {
	return r.find(bson.M{"availability": true}, priceAscending)
}

// FindAllAvailableOrderByRating retrieves available hotels by rating
// descending; hotels without a rating sort last.
func (r *MongoHotelRepo) FindAllAvailableOrderByRating() ([]models.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	return r.find(bson.M{"availability": true}, opts)
}

// Search retrieves available hotels whose name or city contains the term.
func (r *MongoHotelRepo) Search(term string) ([]models.Hotel, error) {
	filter := bson.M{
		"availability": true,
		"$or": []bson.M{
			{"name": containsRegex(term)},
			{"city": containsRegex(term)},
		},
	}
	return r.find(filter, priceAscending)
}

func (r *MongoHotelRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Hotel, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	for cursor.Next(ctx) {
		var h models.Hotel
		if err := cursor.Decode(&h); err != nil {
			return nil, fmt.Errorf("failed to decode hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}
