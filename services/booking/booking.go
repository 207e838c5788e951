// File: services/booking/booking.go
package booking

import (
	"fmt"
	"strings"
	"time"

	bookingRepo "hotelbot/database/repository/booking"
	hotelRepo "hotelbot/database/repository/hotel"
	"hotelbot/models"

	"github.com/google/uuid"
)

// Changes is the optional field set applied by Modify. Nil fields are left
// untouched.
type Changes struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   *int
}

// BookingService manages the booking lifecycle: create, modify, cancel and
// lookup. All mutations validate before they persist; a rejected change never
// partially applies.
type BookingService interface {
	Create(hotel *models.Hotel, checkIn, checkOut time.Time, guests int, userID string) (*models.Booking, error)
	Modify(reference string, changes Changes) (*models.Booking, error)
	// Cancel marks the booking cancelled. The boolean reports whether it was
	// already cancelled, which is informational rather than an error.
	Cancel(reference string) (*models.Booking, bool, error)
	GetDetails(reference string) (*models.Booking, error)
	// HotelFor fetches the hotel a booking refers to.
	HotelFor(b *models.Booking) (*models.Hotel, error)
}

// DefaultBookingService implements BookingService over the booking and hotel
// repositories.
//
// Modify and Cancel are read-then-write without an optimistic concurrency
// token: two concurrent mutations of one booking race and the last write
// wins. Known single-instance limitation, same as the reference generator.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Hotels hotelRepo.HotelRepository
	Refs   *ReferenceGenerator
}

// Create validates the request, obtains a fresh reference and persists the
// booking with status CONFIRMED.
func (s *DefaultBookingService) Create(hotel *models.Hotel, checkIn, checkOut time.Time, guests int, userID string) (*models.Booking, error) {
	if hotel == nil {
		return nil, NewValidationError("Hotel must not be null")
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, NewValidationError("Check-in and check-out dates must not be null")
	}
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("Check-out date must be after check-in date")
	}
	if guests < 1 {
		return nil, NewValidationError("Number of guests must be at least 1")
	}

	b := &models.Booking{
		ID:        uuid.NewString(),
		Reference: s.Refs.Next(),
		HotelID:   hotel.ID,
		UserID:    userID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
		Status:    models.StatusConfirmed,
	}
	b.TotalPrice = b.Nights() * hotel.PricePerNight

	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

// Modify applies the supplied changes to the booking behind the reference.
// Each date change is validated against the combination of old and new
// values, the total price is recomputed, and the booking moves to MODIFIED.
func (s *DefaultBookingService) Modify(reference string, changes Changes) (*models.Booking, error) {
	b, err := s.lookup(reference)
	if err != nil {
		return nil, err
	}
	if b.Status == models.StatusCancelled {
		return nil, &StateError{Message: "This booking has been cancelled and cannot be modified."}
	}

	checkIn := b.CheckIn
	checkOut := b.CheckOut
	if changes.CheckIn != nil {
		checkIn = truncateToDay(*changes.CheckIn)
	}
	if changes.CheckOut != nil {
		checkOut = truncateToDay(*changes.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("Check-out date must be after check-in date")
	}

	guests := b.Guests
	if changes.Guests != nil {
		if *changes.Guests > 10 {
			return nil, NewValidationError("Maximum 10 guests allowed per booking.")
		}
		if *changes.Guests < 1 {
			return nil, NewValidationError("Number of guests must be at least 1")
		}
		guests = *changes.Guests
	}

	hotel, err := s.Hotels.GetByID(b.HotelID)
	if err != nil {
		return nil, fmt.Errorf("modify booking %s: %w", b.Reference, err)
	}

	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.Guests = guests
	b.TotalPrice = b.Nights() * hotel.PricePerNight
	b.Status = models.StatusModified

	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("modify booking %s: %w", b.Reference, err)
	}
	return b, nil
}

// Cancel marks the booking cancelled. Cancelling an already-cancelled booking
// is a no-op reported through the boolean. Dates and total price are kept as
// a historical record.
func (s *DefaultBookingService) Cancel(reference string) (*models.Booking, bool, error) {
	b, err := s.lookup(reference)
	if err != nil {
		return nil, false, err
	}
	if b.Status == models.StatusCancelled {
		return b, true, nil
	}

	b.Status = models.StatusCancelled
	if err := s.Repo.Update(b); err != nil {
		return nil, false, fmt.Errorf("cancel booking %s: %w", b.Reference, err)
	}
	return b, false, nil
}

// GetDetails returns the booking behind the reference.
func (s *DefaultBookingService) GetDetails(reference string) (*models.Booking, error) {
	return s.lookup(reference)
}

// HotelFor fetches the hotel a booking refers to.
func (s *DefaultBookingService) HotelFor(b *models.Booking) (*models.Hotel, error) {
	return s.Hotels.GetByID(b.HotelID)
}

// lookup normalizes the reference to upper case before searching.
func (s *DefaultBookingService) lookup(reference string) (*models.Booking, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	b, err := s.Repo.FindByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("lookup booking %s: %w", reference, err)
	}
	if b == nil {
		return nil, &NotFoundError{Reference: reference}
	}
	return b, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
