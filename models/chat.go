package models

import "time"

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required,max=2000"`
	SessionID string `json:"sessionId"`
}

// ChatResponse is what the chat endpoint returns. BookingInfo and Hotels are
// optional structured payloads; the conversational path currently answers in
// text only and leaves them empty.
type ChatResponse struct {
	Message     string              `json:"message"`
	BookingInfo *BookingInfo        `json:"bookingInfo,omitempty"`
	Hotels      []HotelSearchResult `json:"hotels,omitempty"`
}

// BookingInfo is the client-facing view of a booking. Only the booking
// reference is exposed as an identifier, never the internal id.
type BookingInfo struct {
	BookingID  string        `json:"bookingId"`
	HotelName  string        `json:"hotelName"`
	City       string        `json:"city"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	Guests     int           `json:"guests"`
	Status     BookingStatus `json:"status"`
	TotalPrice int           `json:"totalPrice"`
}

// NewBookingInfo builds a BookingInfo from a booking and its hotel.
func NewBookingInfo(b *Booking, h *Hotel) *BookingInfo {
	return &BookingInfo{
		BookingID:  b.Reference,
		HotelName:  h.Name,
		City:       h.City,
		CheckIn:    b.CheckIn.Format("2006-01-02"),
		CheckOut:   b.CheckOut.Format("2006-01-02"),
		Guests:     b.Guests,
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
	}
}

// HotelSearchResult is the client-facing view of a catalog hit.
type HotelSearchResult struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Address       string  `json:"address,omitempty"`
	PricePerNight int     `json:"pricePerNight"`
	RoomType      string  `json:"roomType"`
	Rating        float64 `json:"rating,omitempty"`
	Available     bool    `json:"available"`
}

// NewHotelSearchResult builds a HotelSearchResult from a hotel.
func NewHotelSearchResult(h *Hotel) HotelSearchResult {
	return HotelSearchResult{
		ID:            h.ID,
		Name:          h.Name,
		City:          h.City,
		Address:       h.Address,
		PricePerNight: h.PricePerNight,
		RoomType:      h.RoomType,
		Rating:        h.Rating,
		Available:     h.Availability,
	}
}

// SessionInfo is the tracked state of a chat session.
type SessionInfo struct {
	SessionID  string    `json:"sessionId"`
	LastAccess time.Time `json:"lastAccess"`
	Messages   int       `json:"messages"`
}
