// File: database/seed/seed.go
package seed

import (
	hotelRepo "hotelbot/database/repository/hotel"
	userRepo "hotelbot/database/repository/user"
	"hotelbot/models"
	"hotelbot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run seeds the database with sample hotels and a demo user. It only inserts
// when the corresponding collection is empty, so restarts are safe.
func Run(hotels hotelRepo.HotelRepository, users userRepo.UserRepository) {
	logger := utils.GetLogger()

	n, err := hotels.Count()
	if err != nil {
		logger.Warn("seed: failed to count hotels, skipping", zap.Error(err))
		return
	}
	if n == 0 {
		logger.Info("Seeding database with sample hotels...")
		seeded := 0
		for _, h := range sampleHotels() {
			hotel := h
			if err := hotels.Create(&hotel); err != nil {
				logger.Warn("seed: failed to insert hotel", zap.String("name", hotel.Name), zap.Error(err))
				continue
			}
			seeded++
		}
		logger.Info("Seeded hotels successfully", zap.Int("count", seeded))
	} else {
		logger.Info("Database already contains hotels, skipping seeding")
	}

	un, err := users.Count()
	if err != nil {
		logger.Warn("seed: failed to count users, skipping demo user", zap.Error(err))
		return
	}
	if un == 0 {
		demo := &models.User{
			ID:    uuid.NewString(),
			Name:  "Demo User",
			Email: "demo@hotel.com",
			Phone: "+91-9876543210",
		}
		if err := users.Create(demo); err != nil {
			logger.Warn("seed: failed to create demo user", zap.Error(err))
			return
		}
		logger.Info("Demo user created successfully")
	}
}

func sampleHotels() []models.Hotel {
	return []models.Hotel{
		// Chennai
		newHotel("The Grand Chennai", "Chennai", "Marina Beach Road", 4500, "Double", 4.5),
		newHotel("Chennai Palace Inn", "Chennai", "T. Nagar Main Road", 3200, "Single", 4.2),
		newHotel("Marina Bay Resort", "Chennai", "ECR Beach", 6800, "Suite", 4.7),
		newHotel("Budget Stay Chennai", "Chennai", "Central Station", 1800, "Single", 3.8),
		newHotel("Seaside Retreat", "Chennai", "Besant Nagar Beach", 5200, "Double", 4.4),

		// Bangalore
		newHotel("Bangalore Tech Hub", "Bangalore", "Electronic City", 3800, "Double", 4.3),
		newHotel("Garden City Suites", "Bangalore", "MG Road", 7500, "Suite", 4.8),
		newHotel("Koramangala Inn", "Bangalore", "Koramangala 5th Block", 2800, "Single", 4.0),
		newHotel("Brigade Residency", "Bangalore", "Brigade Road", 4200, "Double", 4.4),
		newHotel("Whitefield Business Hotel", "Bangalore", "Whitefield", 3500, "Single", 4.1),

		// Mumbai
		newHotel("Gateway Grand Mumbai", "Mumbai", "Colaba, Near Gateway", 9500, "Suite", 4.9),
		newHotel("Bandra Bay View", "Mumbai", "Bandra West", 5800, "Double", 4.5),
		newHotel("Andheri Business Stay", "Mumbai", "Andheri East", 3200, "Single", 4.0),
		newHotel("Juhu Beach Resort", "Mumbai", "Juhu Beach", 7200, "Double", 4.6),
		newHotel("Lower Parel Inn", "Mumbai", "Lower Parel", 4500, "Single", 4.2),

		// Delhi
		newHotel("Delhi Imperial", "Delhi", "Connaught Place", 8500, "Suite", 4.7),
		newHotel("Karol Bagh Budget", "Delhi", "Karol Bagh", 2200, "Single", 3.9),
		newHotel("Aerocity Premium", "Delhi", "Aerocity, IGI Airport", 6500, "Double", 4.5),
		newHotel("South Delhi Residence", "Delhi", "Greater Kailash", 4800, "Double", 4.3),
		newHotel("Old Delhi Heritage", "Delhi", "Chandni Chowk", 3000, "Single", 4.1),

		// Goa
		newHotel("Calangute Beach Resort", "Goa", "Calangute Beach", 5500, "Double", 4.4),
		newHotel("Baga Sunset Villa", "Goa", "Baga Beach", 6200, "Suite", 4.6),
		newHotel("Panjim City Stay", "Goa", "Panjim City Center", 2800, "Single", 4.0),
		newHotel("Anjuna Bohemian", "Goa", "Anjuna Beach", 3800, "Double", 4.3),
		newHotel("South Goa Serenity", "Goa", "Palolem Beach", 4500, "Double", 4.5),

		// Hyderabad
		newHotel("Hyderabad Deccan", "Hyderabad", "Banjara Hills", 5200, "Double", 4.4),
		newHotel("Hitech City Suites", "Hyderabad", "Hitech City", 4500, "Suite", 4.3),
		newHotel("Charminar Heritage", "Hyderabad", "Old City", 2500, "Single", 4.1),
		newHotel("Gachibowli Business Hotel", "Hyderabad", "Gachibowli", 3800, "Double", 4.2),

		// Jaipur
		newHotel("Pink City Palace", "Jaipur", "Near Hawa Mahal", 6500, "Suite", 4.7),
		newHotel("Jaipur Heritage Inn", "Jaipur", "MI Road", 3200, "Double", 4.3),
		newHotel("Amer Fort View", "Jaipur", "Amer Road", 4800, "Double", 4.5),
		newHotel("Budget Jaipur Stay", "Jaipur", "Railway Station Road", 1900, "Single", 3.8),
	}
}

func newHotel(name, city, address string, pricePerNight int, roomType string, rating float64) models.Hotel {
	return models.Hotel{
		ID:            uuid.NewString(),
		Name:          name,
		City:          city,
		Address:       address,
		PricePerNight: pricePerNight,
		RoomType:      roomType,
		Availability:  true,
		Rating:        rating,
	}
}
