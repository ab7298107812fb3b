package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samedayramps/samedayramps-application/geo"
	settingspkg "github.com/samedayramps/samedayramps-application/settings"
)

var (
	// ErrWarehouseNotConfigured is an operator problem: no validated warehouse
	// location to measure the delivery distance from.
	ErrWarehouseNotConfigured = errors.New("warehouse settings are not configured")
	// ErrDistanceUnavailable is a user-facing problem with the supplied
	// address; no partial computation is returned.
	ErrDistanceUnavailable = errors.New("could not calculate distance to the customer address")
)

// Service computes a price quote for a customer address and ramp length.
type Service interface {
	QuotePrice(ctx context.Context, customerAddress string, rampLength decimal.Decimal) (*Breakdown, error)
}

type pricingService struct {
	settings settingspkg.Service
	maps     geo.Service
}

// NewPricingService wires the calculator to the settings store and the
// distance provider.
func NewPricingService(settings settingspkg.Service, maps geo.Service) Service {
	return &pricingService{settings: settings, maps: maps}
}

func (s *pricingService) QuotePrice(ctx context.Context, customerAddress string, rampLength decimal.Decimal) (*Breakdown, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if st.WarehousePlaceID == nil || *st.WarehousePlaceID == "" {
		return nil, ErrWarehouseNotConfigured
	}

	miles, err := s.maps.DriveDistanceMiles(ctx, *st.WarehousePlaceID, customerAddress)
	if err != nil {
		if errors.Is(err, geo.ErrNoRoute) {
			return nil, fmt.Errorf("%w: %v", ErrDistanceUnavailable, err)
		}
		return nil, err
	}

	b := Compute(decimal.NewFromFloat(miles), rampLength, st)
	return &b, nil
}
