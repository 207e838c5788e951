package bookingRepo

import (
	"time"

	"hotelbot/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// Update modifies an existing booking record.
	Update(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// FindByReference retrieves a booking by its human-readable reference.
	// Returns (nil, nil) when no booking carries the reference.
	FindByReference(reference string) (*models.Booking, error)
	// FindByStatus retrieves all bookings with the given status.
	FindByStatus(status models.BookingStatus) ([]models.Booking, error)
	// FindByHotel retrieves all bookings for a hotel.
	FindByHotel(hotelID string) ([]models.Booking, error)
	// FindByUser retrieves all bookings for a user.
	FindByUser(userID string) ([]models.Booking, error)
	// FindActiveByUser retrieves a user's confirmed or modified bookings,
	// ordered by check-in ascending.
	FindActiveByUser(userID string) ([]models.Booking, error)
	// FindOverlapping retrieves non-cancelled bookings for a hotel whose stay
	// overlaps the given date range.
	FindOverlapping(hotelID string, start, end time.Time) ([]models.Booking, error)
	// FindUpcoming retrieves confirmed bookings checking in on or after the
	// given date, ordered by check-in ascending.
	FindUpcoming(from time.Time) ([]models.Booking, error)
	// CountCreatedSince counts bookings created at or after the given time.
	// Used to seed the daily reference counter on startup.
	CountCreatedSince(t time.Time) (int64, error)
}
