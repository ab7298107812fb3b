package geo

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

// metersPerMile converts Distance Matrix meters to miles.
const metersPerMile = 1609.34

var (
	// ErrNoRoute means the provider could not route between the warehouse and
	// the given address. This is a bad-address problem, not a config problem.
	ErrNoRoute = errors.New("could not calculate distance to address")
	// ErrAddressNotFound means geocoding returned no usable match.
	ErrAddressNotFound = errors.New("address not recognized")
)

// PlaceMatch is the canonical form of a geocoded address.
type PlaceMatch struct {
	FormattedAddress string
	PlaceID          string
}

// Service exposes the two maps operations the app needs: driving distance
// from the warehouse and warehouse-address validation.
type Service interface {
	DriveDistanceMiles(ctx context.Context, originPlaceID, destination string) (float64, error)
	ValidateAddress(ctx context.Context, address string) (*PlaceMatch, error)
}

type googleMapsService struct {
	client *maps.Client
}

// NewGoogleMapsService constructs a Service backed by the Google Maps
// Distance Matrix and Geocoding APIs.
func NewGoogleMapsService(apiKey string) (Service, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is required")
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init google maps client: %w", err)
	}
	return &googleMapsService{client: c}, nil
}

// DriveDistanceMiles returns the one-way driving distance in miles from the
// warehouse place id to a free-text destination address.
func (s *googleMapsService) DriveDistanceMiles(ctx context.Context, originPlaceID, destination string) (float64, error) {
	resp, err := s.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{"place_id:" + originPlaceID},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsImperial,
	})
	if err != nil {
		return 0, fmt.Errorf("distance matrix request: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, ErrNoRoute
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, fmt.Errorf("%w: element status %s", ErrNoRoute, el.Status)
	}
	return float64(el.Distance.Meters) / metersPerMile, nil
}

// ValidateAddress geocodes a free-text address and returns its formatted
// address and place id. Used when the warehouse address changes in settings.
func (s *googleMapsService) ValidateAddress(ctx context.Context, address string) (*PlaceMatch, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrAddressNotFound
	}
	return &PlaceMatch{
		FormattedAddress: results[0].FormattedAddress,
		PlaceID:          results[0].PlaceID,
	}, nil
}
