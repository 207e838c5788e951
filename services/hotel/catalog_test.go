package hotel

import (
	"testing"

	"hotelbot/models"
)

// recordingHotelRepo records which query ran and serves canned results.
type recordingHotelRepo struct {
	lastQuery string
	hotels    []models.Hotel

	minPrice, maxPrice int
	roomType           string
}

func (r *recordingHotelRepo) Create(h *models.Hotel) error { return nil }

func (r *recordingHotelRepo) GetByID(id string) (*models.Hotel, error) {
	return nil, nil
}

func (r *recordingHotelRepo) Count() (int64, error) { return int64(len(r.hotels)), nil }

func (r *recordingHotelRepo) FindAvailableByCity(city string) ([]models.Hotel, error) {
	r.lastQuery = "byCity"
	return r.hotels, nil
}

func (r *recordingHotelRepo) FindByCity(city string) ([]models.Hotel, error) {
	r.lastQuery = "byCityAny"
	return r.hotels, nil
}

func (r *recordingHotelRepo) FindAvailableByPriceRange(city string, minPrice, maxPrice int) ([]models.Hotel, error) {
	r.lastQuery = "byPriceRange"
	r.minPrice, r.maxPrice = minPrice, maxPrice
	return r.hotels, nil
}

func (r *recordingHotelRepo) FindAvailableByRoomType(city, roomType string) ([]models.Hotel, error) {
	r.lastQuery = "byRoomType"
	r.roomType = roomType
	return r.hotels, nil
}

func (r *recordingHotelRepo) FindAllAvailable() ([]models.Hotel, error) {
	r.lastQuery = "allAvailable"
	return r.hotels, nil
}

func (r *recordingHotelRepo) FindAllAvailableOrderByRating() ([]models.Hotel, error) {
	r.lastQuery = "byRating"
	return r.hotels, nil
}

func (r *recordingHotelRepo) Search(term string) ([]models.Hotel, error) {
	r.lastQuery = "search"
	return r.hotels, nil
}

func sampleHotels() []models.Hotel {
	return []models.Hotel{
		{ID: "h1", Name: "Budget Inn", City: "Chennai", PricePerNight: 900, RoomType: "Single", Availability: true},
		{ID: "h2", Name: "Taj Coromandel", City: "Chennai", PricePerNight: 12000, RoomType: "Suite", Availability: true},
	}
}

func TestSearchCityOnly(t *testing.T) {
	repo := &recordingHotelRepo{hotels: sampleHotels()}
	svc := &DefaultCatalogService{Repo: repo}

	hotels, err := svc.Search("Chennai", nil, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if repo.lastQuery != "byCity" {
		t.Errorf("query = %s, want byCity", repo.lastQuery)
	}
	if len(hotels) != 2 {
		t.Errorf("got %d hotels, want 2", len(hotels))
	}
}

func TestSearchMaxPriceOnly(t *testing.T) {
	repo := &recordingHotelRepo{hotels: sampleHotels()}
	svc := &DefaultCatalogService{Repo: repo}

	maxPrice := 5000
	if _, err := svc.Search("Chennai", &maxPrice, ""); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if repo.lastQuery != "byPriceRange" {
		t.Errorf("query = %s, want byPriceRange", repo.lastQuery)
	}
	if repo.minPrice != 0 || repo.maxPrice != 5000 {
		t.Errorf("range = (%d, %d), want (0, 5000)", repo.minPrice, repo.maxPrice)
	}
}

func TestSearchRoomTypeWithPriceCap(t *testing.T) {
	repo := &recordingHotelRepo{hotels: sampleHotels()}
	svc := &DefaultCatalogService{Repo: repo}

	maxPrice := 5000
	hotels, err := svc.Search("Chennai", &maxPrice, "Single")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if repo.lastQuery != "byRoomType" {
		t.Errorf("query = %s, want byRoomType", repo.lastQuery)
	}
	// The 12000 suite must be filtered out in memory.
	if len(hotels) != 1 || hotels[0].Name != "Budget Inn" {
		t.Errorf("got %v, want only Budget Inn", hotels)
	}
}

func TestResolveHotelPrefersCityMatch(t *testing.T) {
	repo := &recordingHotelRepo{hotels: []models.Hotel{
		{ID: "h1", Name: "Grand Palace", City: "Mumbai", PricePerNight: 3000, Availability: true},
		{ID: "h2", Name: "Grand Palace", City: "Jaipur", PricePerNight: 4000, Availability: true},
	}}
	svc := &DefaultCatalogService{Repo: repo}

	h, err := svc.ResolveHotel("Grand Palace", "jaipur")
	if err != nil {
		t.Fatalf("ResolveHotel returned error: %v", err)
	}
	if h == nil || h.ID != "h2" {
		t.Errorf("resolved %v, want the Jaipur hotel", h)
	}
}

func TestResolveHotelFallsBackToFirstMatch(t *testing.T) {
	repo := &recordingHotelRepo{hotels: sampleHotels()}
	svc := &DefaultCatalogService{Repo: repo}

	h, err := svc.ResolveHotel("Inn", "Goa")
	if err != nil {
		t.Fatalf("ResolveHotel returned error: %v", err)
	}
	if h == nil || h.ID != "h1" {
		t.Errorf("resolved %v, want the first (cheapest) match", h)
	}
}

func TestResolveHotelNoMatch(t *testing.T) {
	repo := &recordingHotelRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	h, err := svc.ResolveHotel("Nothing Here", "")
	if err != nil {
		t.Fatalf("ResolveHotel returned error: %v", err)
	}
	if h != nil {
		t.Errorf("resolved %v, want nil", h)
	}
}
