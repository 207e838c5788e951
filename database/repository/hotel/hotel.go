package hotelRepo

import "hotelbot/models"

// HotelRepository defines methods for hotel data access.
// All multi-result queries return hotels ordered by price per night ascending
// and never fail on an empty result.
type HotelRepository interface {
	// Create inserts a new hotel record.
	Create(hotel *models.Hotel) error
	// GetByID retrieves a hotel by its unique ID.
	GetByID(id string) (*models.Hotel, error)
	// Count returns the number of hotel records.
	Count() (int64, error)
	// FindAvailableByCity retrieves available hotels whose city contains the
	// given term, case-insensitively.
	FindAvailableByCity(city string) ([]models.Hotel, error)
	// FindByCity retrieves hotels in a city regardless of availability,
	// matching the city name exactly (case-insensitive).
	FindByCity(city string) ([]models.Hotel, error)
	// FindAvailableByPriceRange retrieves available hotels in a city within
	// the inclusive price range.
	FindAvailableByPriceRange(city string, minPrice, maxPrice int) ([]models.Hotel, error)
	// FindAvailableByRoomType retrieves available hotels in a city with the
	// given room type (case-insensitive equality).
	FindAvailableByRoomType(city, roomType string) ([]models.Hotel, error)
	// FindAllAvailable retrieves every available hotel.
	FindAllAvailable() ([]models.Hotel, error)
	// FindAllAvailableOrderByRating retrieves available hotels ordered by
	// rating descending, unrated hotels last.
	FindAllAvailableOrderByRating() ([]models.Hotel, error)
	// Search retrieves available hotels whose name or city contains the term,
	// case-insensitively.
	Search(term string) ([]models.Hotel, error)
}
