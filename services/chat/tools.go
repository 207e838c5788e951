// File: services/chat/tools.go
package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotelbot/models"
	"hotelbot/services/booking"
	"hotelbot/services/hotel"
	"hotelbot/utils"

	"go.uber.org/zap"
)

// BookingTools is the set of actions exposed to the chat model for function
// calling. Every tool takes loosely-formatted input, returns plain text for
// the model to weave into its reply, and never lets an error escape its own
// boundary.
type BookingTools struct {
	Catalog  hotel.CatalogService
	Bookings booking.BookingService

	now func() time.Time
}

// NewBookingTools wires the tool set over the catalog and booking services.
func NewBookingTools(catalog hotel.CatalogService, bookings booking.BookingService) *BookingTools {
	return &BookingTools{Catalog: catalog, Bookings: bookings, now: time.Now}
}

// SearchHotels lists available hotels in a city, optionally capped by price
// and filtered by room type.
func (t *BookingTools) SearchHotels(city string, maxPrice *int, roomType string) string {
	utils.GetLogger().Info("Searching hotels",
		zap.String("city", city), zap.Any("maxPrice", maxPrice), zap.String("roomType", roomType))

	hotels, err := t.Catalog.Search(city, maxPrice, roomType)
	if err != nil {
		utils.GetLogger().Error("Hotel search failed", zap.Error(err))
		return "❌ An error occurred while searching for hotels: " + err.Error()
	}

	if len(hotels) == 0 {
		return "No available hotels found in " + city + ". Please try a different city or adjust your search criteria."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d hotel(s) in %s:\n\n", len(hotels), city)
	for i, h := range hotels {
		fmt.Fprintf(&sb, "%d. **%s**\n", i+1, h.Name)
		fmt.Fprintf(&sb, "   📍 %s\n", h.Location())
		fmt.Fprintf(&sb, "   🛏️ %s Room\n", h.RoomType)
		fmt.Fprintf(&sb, "   💰 ₹%s per night\n", groupDigits(h.PricePerNight))
		if h.Rated() {
			fmt.Fprintf(&sb, "   ⭐ %.1f/5 rating\n", h.Rating)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// CreateBooking books a hotel resolved by fuzzy name within a city.
func (t *BookingTools) CreateBooking(hotelName, city, checkInDate, checkOutDate string, guests int) string {
	utils.GetLogger().Info("Creating booking",
		zap.String("hotel", hotelName), zap.String("city", city),
		zap.String("checkIn", checkInDate), zap.String("checkOut", checkOutDate), zap.Int("guests", guests))

	checkIn, ok := parseDate(checkInDate)
	if !ok {
		return "❌ Invalid date format. Please use YYYY-MM-DD format (e.g., 2026-03-15)."
	}
	checkOut, ok := parseDate(checkOutDate)
	if !ok {
		return "❌ Invalid date format. Please use YYYY-MM-DD format (e.g., 2026-03-15)."
	}

	if checkIn.Before(t.today()) {
		return "❌ Check-in date cannot be in the past. Please provide a future date."
	}
	if !checkOut.After(checkIn) {
		return "❌ Check-out date must be after check-in date."
	}
	if guests < 1 || guests > 10 {
		return "❌ Number of guests must be between 1 and 10."
	}

	h, err := t.Catalog.ResolveHotel(hotelName, city)
	if err != nil {
		utils.GetLogger().Error("Hotel resolution failed", zap.Error(err))
		return "❌ An error occurred while creating the booking: " + err.Error()
	}
	if h == nil {
		return "❌ Could not find a hotel named '" + hotelName + "'. Please search for available hotels first."
	}

	b, err := t.Bookings.Create(h, checkIn, checkOut, guests, "")
	if err != nil {
		return renderBookingError(err, "creating")
	}

	return formatBookingConfirmation(b, h)
}

// ModifyBooking updates dates and/or guest count on an existing booking.
func (t *BookingTools) ModifyBooking(bookingReference, newCheckInDate, newCheckOutDate string, newGuests *int) string {
	utils.GetLogger().Info("Modifying booking", zap.String("reference", bookingReference))

	changes := booking.Changes{}
	if strings.TrimSpace(newCheckInDate) != "" {
		checkIn, ok := parseDate(newCheckInDate)
		if !ok {
			return "❌ Invalid date format. Please use YYYY-MM-DD format."
		}
		if checkIn.Before(t.today()) {
			return "❌ New check-in date cannot be in the past."
		}
		changes.CheckIn = &checkIn
	}
	if strings.TrimSpace(newCheckOutDate) != "" {
		checkOut, ok := parseDate(newCheckOutDate)
		if !ok {
			return "❌ Invalid date format. Please use YYYY-MM-DD format."
		}
		changes.CheckOut = &checkOut
	}
	// Zero and negative guest counts are ignored, matching the loose tool
	// input contract; only genuine change requests are validated.
	if newGuests != nil && *newGuests > 0 {
		changes.Guests = newGuests
	}

	b, err := t.Bookings.Modify(bookingReference, changes)
	if err != nil {
		return renderBookingError(err, "modifying")
	}

	h, err := t.Bookings.HotelFor(b)
	if err != nil {
		utils.GetLogger().Error("Hotel lookup failed", zap.Error(err))
		return "❌ An error occurred while modifying the booking: " + err.Error()
	}

	var sb strings.Builder
	sb.WriteString("✅ **Booking Modified Successfully!**\n\n")
	fmt.Fprintf(&sb, "📋 Booking ID: **%s**\n", b.Reference)
	fmt.Fprintf(&sb, "🏨 Hotel: %s\n", h.Name)
	fmt.Fprintf(&sb, "📅 New Dates: %s to %s\n", formatDate(b.CheckIn), formatDate(b.CheckOut))
	fmt.Fprintf(&sb, "👥 Guests: %d\n", b.Guests)
	fmt.Fprintf(&sb, "💰 Updated Total: ₹%s\n", groupDigits(b.TotalPrice))
	fmt.Fprintf(&sb, "📌 Status: %s\n", b.Status)
	return sb.String()
}

// CancelBooking cancels an existing booking. Cancelling twice is
// informational, not an error.
func (t *BookingTools) CancelBooking(bookingReference string) string {
	utils.GetLogger().Info("Cancelling booking", zap.String("reference", bookingReference))

	b, already, err := t.Bookings.Cancel(bookingReference)
	if err != nil {
		return renderBookingError(err, "cancelling")
	}
	if already {
		return "ℹ️ This booking has already been cancelled."
	}

	h, err := t.Bookings.HotelFor(b)
	if err != nil {
		utils.GetLogger().Error("Hotel lookup failed", zap.Error(err))
		return "❌ An error occurred while cancelling the booking: " + err.Error()
	}

	var sb strings.Builder
	sb.WriteString("✅ **Booking Cancelled Successfully**\n\n")
	fmt.Fprintf(&sb, "📋 Booking ID: **%s**\n", b.Reference)
	fmt.Fprintf(&sb, "🏨 Hotel: %s\n", h.Name)
	fmt.Fprintf(&sb, "📅 Original Dates: %s to %s\n", formatDate(b.CheckIn), formatDate(b.CheckOut))
	sb.WriteString("📌 Status: CANCELLED\n\n")
	sb.WriteString("If you need to make a new booking, I'd be happy to help!")
	return sb.String()
}

// GetBookingDetails renders the full detail block for a booking.
func (t *BookingTools) GetBookingDetails(bookingReference string) string {
	utils.GetLogger().Info("Getting booking details", zap.String("reference", bookingReference))

	b, err := t.Bookings.GetDetails(bookingReference)
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			return "❌ Booking not found with reference: " + notFound.Reference
		}
		return renderBookingError(err, "fetching")
	}

	h, err := t.Bookings.HotelFor(b)
	if err != nil {
		utils.GetLogger().Error("Hotel lookup failed", zap.Error(err))
		return "❌ An error occurred while fetching the booking: " + err.Error()
	}

	var sb strings.Builder
	sb.WriteString("📋 **Booking Details**\n\n")
	fmt.Fprintf(&sb, "🆔 Booking ID: **%s**\n", b.Reference)
	fmt.Fprintf(&sb, "📌 Status: %s\n\n", b.Status)
	sb.WriteString("🏨 **Hotel Information**\n")
	fmt.Fprintf(&sb, "   Name: %s\n", h.Name)
	fmt.Fprintf(&sb, "   Location: %s", h.City)
	if h.Address != "" {
		fmt.Fprintf(&sb, " - %s", h.Address)
	}
	fmt.Fprintf(&sb, "\n   Room Type: %s\n\n", h.RoomType)
	sb.WriteString("📅 **Stay Details**\n")
	fmt.Fprintf(&sb, "   Check-in: %s\n", formatDate(b.CheckIn))
	fmt.Fprintf(&sb, "   Check-out: %s\n", formatDate(b.CheckOut))
	fmt.Fprintf(&sb, "   Duration: %d night(s)\n", b.Nights())
	fmt.Fprintf(&sb, "   Guests: %d\n\n", b.Guests)
	sb.WriteString("💰 **Payment**\n")
	fmt.Fprintf(&sb, "   Total: ₹%s\n", groupDigits(b.TotalPrice))
	return sb.String()
}

func formatBookingConfirmation(b *models.Booking, h *models.Hotel) string {
	var sb strings.Builder
	sb.WriteString("✅ **Booking Confirmed!**\n\n")
	fmt.Fprintf(&sb, "📋 Booking ID: **%s**\n\n", b.Reference)
	sb.WriteString("🏨 **Hotel Details**\n")
	fmt.Fprintf(&sb, "   %s\n", h.Name)
	fmt.Fprintf(&sb, "   📍 %s", h.City)
	if h.Address != "" {
		fmt.Fprintf(&sb, " - %s", h.Address)
	}
	fmt.Fprintf(&sb, "\n   🛏️ %s Room\n\n", h.RoomType)
	sb.WriteString("📅 **Stay Details**\n")
	fmt.Fprintf(&sb, "   Check-in: %s\n", formatDate(b.CheckIn))
	fmt.Fprintf(&sb, "   Check-out: %s\n", formatDate(b.CheckOut))
	fmt.Fprintf(&sb, "   Duration: %d night(s)\n", b.Nights())
	fmt.Fprintf(&sb, "   Guests: %d\n\n", b.Guests)
	fmt.Fprintf(&sb, "💰 **Total Amount: ₹%s**\n\n", groupDigits(b.TotalPrice))
	sb.WriteString("Please save your booking ID for future reference. Is there anything else I can help you with?")
	return sb.String()
}

// renderBookingError resolves a booking service error into user-facing text.
func renderBookingError(err error, action string) string {
	var validation *booking.ValidationError
	if errors.As(err, &validation) {
		return "❌ " + validation.Message
	}
	var state *booking.StateError
	if errors.As(err, &state) {
		return "❌ " + state.Message
	}
	var notFound *booking.NotFoundError
	if errors.As(err, &notFound) {
		return "❌ Booking not found with reference: " + notFound.Reference +
			". Please verify the booking ID and try again."
	}
	utils.GetLogger().Error("Booking operation failed", zap.String("action", action), zap.Error(err))
	return fmt.Sprintf("❌ An error occurred while %s the booking: %s", action, err.Error())
}

func (t *BookingTools) today() time.Time {
	now := t.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// groupDigits renders a non-negative amount with thousands separators,
// e.g. 7500 -> "7,500".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
