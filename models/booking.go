package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusModified  BookingStatus = "MODIFIED"
)

// Booking links a guest to a hotel for a date range. CheckOut is exclusive
// and must always be strictly after CheckIn. TotalPrice is derived
// (nights x hotel price per night) and is recomputed by the booking service
// whenever dates change, never by field side effects.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	Reference  string        `bson:"booking_reference" json:"bookingReference"`
	HotelID    string        `bson:"hotel_id" json:"hotelId"`
	UserID     string        `bson:"user_id,omitempty" json:"userId,omitempty"`
	CheckIn    time.Time     `bson:"check_in" json:"checkIn"`
	CheckOut   time.Time     `bson:"check_out" json:"checkOut"`
	Guests     int           `bson:"guests" json:"guests"`
	Status     BookingStatus `bson:"status" json:"status"`
	TotalPrice int           `bson:"total_price" json:"totalPrice"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Nights returns the number of nights covered by the stay. Dates are stored
// truncated to midnight UTC, so the day difference is exact.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
