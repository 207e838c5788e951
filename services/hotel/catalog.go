// File: services/hotel/catalog.go
package hotel

import (
	"fmt"
	"strings"

	hotelRepo "hotelbot/database/repository/hotel"
	"hotelbot/models"
)

// CatalogService answers filtered hotel searches and resolves human-typed
// hotel names to concrete records.
type CatalogService interface {
	// Search returns available hotels in a city ordered by price ascending.
	// maxPrice and roomType are optional filters (nil / empty to skip).
	Search(city string, maxPrice *int, roomType string) ([]models.Hotel, error)
	// FindByNameFuzzy returns available hotels whose name or city contains
	// the term, case-insensitively, ordered by price ascending.
	FindByNameFuzzy(term string) ([]models.Hotel, error)
	// ResolveHotel picks the hotel a user most likely meant. The first fuzzy
	// match whose city contains the given city wins; otherwise the first
	// match overall. Returns (nil, nil) when nothing matches.
	ResolveHotel(name, city string) (*models.Hotel, error)
	// GetByID retrieves a hotel by its ID.
	GetByID(id string) (*models.Hotel, error)
}

// DefaultCatalogService implements CatalogService over a HotelRepository.
type DefaultCatalogService struct {
	Repo hotelRepo.HotelRepository
}

// Search applies the filters the caller supplied. When both roomType and
// maxPrice are given, the room-type query runs first and the price cap is
// re-applied in memory; the price-only path delegates a 0..maxPrice range
// query instead.
func (s *DefaultCatalogService) Search(city string, maxPrice *int, roomType string) ([]models.Hotel, error) {
	roomType = strings.TrimSpace(roomType)

	switch {
	case roomType != "":
		hotels, err := s.Repo.FindAvailableByRoomType(city, roomType)
		if err != nil {
			return nil, fmt.Errorf("search hotels by room type: %w", err)
		}
		if maxPrice != nil {
			filtered := hotels[:0]
			for _, h := range hotels {
				if h.PricePerNight <= *maxPrice {
					filtered = append(filtered, h)
				}
			}
			hotels = filtered
		}
		return hotels, nil
	case maxPrice != nil:
		hotels, err := s.Repo.FindAvailableByPriceRange(city, 0, *maxPrice)
		if err != nil {
			return nil, fmt.Errorf("search hotels by price range: %w", err)
		}
		return hotels, nil
	default:
		hotels, err := s.Repo.FindAvailableByCity(city)
		if err != nil {
			return nil, fmt.Errorf("search hotels by city: %w", err)
		}
		return hotels, nil
	}
}

// FindByNameFuzzy matches name or city substrings.
func (s *DefaultCatalogService) FindByNameFuzzy(term string) ([]models.Hotel, error) {
	hotels, err := s.Repo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("fuzzy hotel search: %w", err)
	}
	return hotels, nil
}

// ResolveHotel keeps the first-city-match tie-break: within the price-ordered
// fuzzy result, the first hotel whose city contains the requested city wins;
// without such a hit, the cheapest match is taken.
func (s *DefaultCatalogService) ResolveHotel(name, city string) (*models.Hotel, error) {
	matches, err := s.FindByNameFuzzy(name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	wanted := strings.ToLower(city)
	for i := range matches {
		if strings.Contains(strings.ToLower(matches[i].City), wanted) {
			return &matches[i], nil
		}
	}
	return &matches[0], nil
}

// GetByID retrieves a hotel by its ID.
func (s *DefaultCatalogService) GetByID(id string) (*models.Hotel, error) {
	return s.Repo.GetByID(id)
}
