package models

import "time"

// Hotel represents a bookable hotel in the catalog.
// Rating is 0 when the hotel has not been rated yet.
type Hotel struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	City          string    `bson:"city" json:"city"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	PricePerNight int       `bson:"price_per_night" json:"pricePerNight"`
	RoomType      string    `bson:"room_type" json:"roomType"`
	Availability  bool      `bson:"availability" json:"availability"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// Rated reports whether the hotel carries a rating.
func (h *Hotel) Rated() bool {
	return h.Rating > 0
}

// Location returns the address when set, otherwise the city.
func (h *Hotel) Location() string {
	if h.Address != "" {
		return h.Address
	}
	return h.City
}
