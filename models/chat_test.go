package models

import (
	"testing"
	"time"
)

func TestNewBookingInfoExposesReferenceNotID(t *testing.T) {
	b := &Booking{
		ID:         "3f2e1d00-0000-0000-0000-000000000000",
		Reference:  "HBK-2026-00007",
		CheckIn:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Status:     StatusConfirmed,
		TotalPrice: 7500,
	}
	h := &Hotel{Name: "Taj Coromandel", City: "Chennai"}

	info := NewBookingInfo(b, h)
	if info.BookingID != "HBK-2026-00007" {
		t.Errorf("BookingID = %q, want the booking reference", info.BookingID)
	}
	if info.CheckIn != "2026-10-01" || info.CheckOut != "2026-10-04" {
		t.Errorf("dates = %q..%q, want ISO format", info.CheckIn, info.CheckOut)
	}
}

func TestNewHotelSearchResult(t *testing.T) {
	h := &Hotel{
		ID:            "h1",
		Name:          "Beachside Resort",
		City:          "Goa",
		PricePerNight: 5500,
		RoomType:      "Double",
		Availability:  true,
	}

	r := NewHotelSearchResult(h)
	if r.ID != "h1" || r.Name != "Beachside Resort" || !r.Available {
		t.Errorf("unexpected result: %+v", r)
	}
}
