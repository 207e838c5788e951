package booking

import (
	"errors"
	"strings"
	"testing"
	"time"

	"hotelbot/models"
)

// fakeBookingRepo is an in-memory BookingRepository keyed by reference.
type fakeBookingRepo struct {
	byRef       map[string]*models.Booking
	countToday  int64
	countErr    error
	updateCalls int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byRef: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	copied := *b
	r.byRef[b.Reference] = &copied
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.updateCalls++
	copied := *b
	r.byRef[b.Reference] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range r.byRef {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindByReference(reference string) (*models.Booking, error) {
	b, ok := r.byRef[reference]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) FindByStatus(status models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) FindByHotel(hotelID string) ([]models.Booking, error) { return nil, nil }

func (r *fakeBookingRepo) FindByUser(userID string) ([]models.Booking, error) { return nil, nil }

func (r *fakeBookingRepo) FindActiveByUser(userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) FindOverlapping(hotelID string, start, end time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) FindUpcoming(from time.Time) ([]models.Booking, error) { return nil, nil }

func (r *fakeBookingRepo) CountCreatedSince(t time.Time) (int64, error) {
	return r.countToday, r.countErr
}

// fakeHotelRepo serves a fixed set of hotels.
type fakeHotelRepo struct {
	hotels []models.Hotel
}

func (r *fakeHotelRepo) Create(h *models.Hotel) error { return nil }

func (r *fakeHotelRepo) GetByID(id string) (*models.Hotel, error) {
	for i := range r.hotels {
		if r.hotels[i].ID == id {
			copied := r.hotels[i]
			return &copied, nil
		}
	}
	return nil, errors.New("hotel not found: " + id)
}

func (r *fakeHotelRepo) Count() (int64, error) { return int64(len(r.hotels)), nil }

func (r *fakeHotelRepo) FindAvailableByCity(city string) ([]models.Hotel, error) {
	return r.hotels, nil
}

func (r *fakeHotelRepo) FindByCity(city string) ([]models.Hotel, error) { return r.hotels, nil }

func (r *fakeHotelRepo) FindAvailableByPriceRange(city string, minPrice, maxPrice int) ([]models.Hotel, error) {
	return r.hotels, nil
}

func (r *fakeHotelRepo) FindAvailableByRoomType(city, roomType string) ([]models.Hotel, error) {
	return r.hotels, nil
}

func (r *fakeHotelRepo) FindAllAvailable() ([]models.Hotel, error) { return r.hotels, nil }

func (r *fakeHotelRepo) FindAllAvailableOrderByRating() ([]models.Hotel, error) {
	return r.hotels, nil
}

func (r *fakeHotelRepo) Search(term string) ([]models.Hotel, error) { return r.hotels, nil }

func testHotel() *models.Hotel {
	return &models.Hotel{
		ID:            "hotel-1",
		Name:          "Taj Coromandel",
		City:          "Chennai",
		Address:       "Nungambakkam",
		PricePerNight: 2500,
		RoomType:      "Double",
		Availability:  true,
	}
}

func newTestService(repo *fakeBookingRepo, h *models.Hotel) *DefaultBookingService {
	hotels := &fakeHotelRepo{}
	if h != nil {
		hotels.hotels = []models.Hotel{*h}
	}
	return &DefaultBookingService{
		Repo:   repo,
		Hotels: hotels,
		Refs:   NewReferenceGenerator(nil),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateComputesTotalPrice(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, err := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 4), 2, "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.TotalPrice != 7500 {
		t.Errorf("TotalPrice = %d, want 7500 (3 nights at 2500)", b.TotalPrice)
	}
	if b.Status != models.StatusConfirmed {
		t.Errorf("Status = %s, want %s", b.Status, models.StatusConfirmed)
	}
	if !strings.HasPrefix(b.Reference, "HBK-") {
		t.Errorf("Reference = %q, want HBK- prefix", b.Reference)
	}
	if stored, _ := repo.FindByReference(b.Reference); stored == nil {
		t.Error("booking was not persisted")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), testHotel())

	cases := []struct {
		name     string
		hotel    *models.Hotel
		checkIn  time.Time
		checkOut time.Time
		guests   int
		wantMsg  string
	}{
		{"nil hotel", nil, day(2026, 10, 1), day(2026, 10, 2), 2, "Hotel must not be null"},
		{"zero dates", testHotel(), time.Time{}, time.Time{}, 2, "Check-in and check-out dates must not be null"},
		{"checkout before checkin", testHotel(), day(2026, 10, 4), day(2026, 10, 1), 2, "Check-out date must be after check-in date"},
		{"same day", testHotel(), day(2026, 10, 1), day(2026, 10, 1), 2, "Check-out date must be after check-in date"},
		{"zero guests", testHotel(), day(2026, 10, 1), day(2026, 10, 2), 0, "Number of guests must be at least 1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.hotel, tc.checkIn, tc.checkOut, tc.guests, "")
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if validation.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", validation.Message, tc.wantMsg)
			}
		})
	}
}

func TestModifyRecomputesPriceAndStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, err := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 3), 2, "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newOut := day(2026, 10, 6)
	modified, err := svc.Modify(b.Reference, Changes{CheckOut: &newOut})
	if err != nil {
		t.Fatalf("Modify returned error: %v", err)
	}
	if modified.TotalPrice != 5*2500 {
		t.Errorf("TotalPrice = %d, want %d", modified.TotalPrice, 5*2500)
	}
	if modified.Status != models.StatusModified {
		t.Errorf("Status = %s, want %s", modified.Status, models.StatusModified)
	}
}

func TestModifyRejectsTooManyGuests(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, _ := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 3), 2, "")

	guests := 12
	_, err := svc.Modify(b.Reference, Changes{Guests: &guests})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if validation.Message != "Maximum 10 guests allowed per booking." {
		t.Errorf("message = %q", validation.Message)
	}

	stored, _ := repo.FindByReference(b.Reference)
	if stored.Guests != 2 {
		t.Errorf("stored guests = %d, want 2 (rejected change must not apply)", stored.Guests)
	}
	if stored.Status != models.StatusConfirmed {
		t.Errorf("stored status = %s, want %s", stored.Status, models.StatusConfirmed)
	}
}

func TestModifyValidatesCombinedDates(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, _ := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 3), 2, "")

	// New check-in on/after the existing check-out must be rejected.
	newIn := day(2026, 10, 5)
	_, err := svc.Modify(b.Reference, Changes{CheckIn: &newIn})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if validation.Message != "Check-out date must be after check-in date" {
		t.Errorf("message = %q", validation.Message)
	}

	stored, _ := repo.FindByReference(b.Reference)
	if !stored.CheckIn.Equal(day(2026, 10, 1)) {
		t.Errorf("stored check-in = %v, want unchanged", stored.CheckIn)
	}
}

func TestModifyCancelledBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, _ := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 3), 2, "")
	if _, _, err := svc.Cancel(b.Reference); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	guests := 3
	_, err := svc.Modify(b.Reference, Changes{Guests: &guests})
	var state *StateError
	if !errors.As(err, &state) {
		t.Fatalf("error = %v, want StateError", err)
	}
	if state.Message != "This booking has been cancelled and cannot be modified." {
		t.Errorf("message = %q", state.Message)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, _ := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 3), 2, "")

	cancelled, already, err := svc.Cancel(b.Reference)
	if err != nil {
		t.Fatalf("first Cancel returned error: %v", err)
	}
	if already {
		t.Error("first Cancel reported already cancelled")
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("status = %s, want %s", cancelled.Status, models.StatusCancelled)
	}
	if !cancelled.CheckIn.Equal(day(2026, 10, 1)) || cancelled.TotalPrice != 5000 {
		t.Error("cancel must keep dates and total price as a historical record")
	}

	_, already, err = svc.Cancel(b.Reference)
	if err != nil {
		t.Fatalf("second Cancel returned error: %v", err)
	}
	if !already {
		t.Error("second Cancel did not report already cancelled")
	}
}

func TestLookupNormalizesReference(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, testHotel())

	b, _ := svc.Create(testHotel(), day(2026, 10, 1), day(2026, 10, 3), 2, "")

	got, err := svc.GetDetails("  " + strings.ToLower(b.Reference) + " ")
	if err != nil {
		t.Fatalf("GetDetails returned error: %v", err)
	}
	if got.Reference != b.Reference {
		t.Errorf("Reference = %q, want %q", got.Reference, b.Reference)
	}
}

func TestGetDetailsUnknownReference(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), testHotel())

	_, err := svc.GetDetails("HBK-2026-99999")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFound.Reference != "HBK-2026-99999" {
		t.Errorf("Reference = %q", notFound.Reference)
	}
}
