package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samedayramps/samedayramps-application/entity"
	"github.com/samedayramps/samedayramps-application/geo"
	settingspkg "github.com/samedayramps/samedayramps-application/settings"
)

// settingsService implements settings.Service.
type settingsService struct {
	repo settingspkg.Repository
	maps geo.Service
}

// NewSettingsService constructs a settings.Service backed by the provided
// repository and geocoding client.
func NewSettingsService(repo settingspkg.Repository, maps geo.Service) settingspkg.Service {
	return &settingsService{repo: repo, maps: maps}
}

// defaultSettings is the row created on first read if none exists.
func defaultSettings() *entity.Settings {
	formatted := "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA"
	placeID := "ChIJ2eUgeAK6j4ARbn5u_wAGqWA"
	return &entity.Settings{
		ID:                        entity.SettingsID,
		WarehouseAddress:          "1600 Amphitheatre Parkway, Mountain View, CA",
		WarehouseFormattedAddress: &formatted,
		WarehousePlaceID:          &placeID,
		CostPerMile:               decimal.NewFromFloat(2.5),
		InstallFeePerFoot:         decimal.NewFromInt(15),
		RentalPricePerFoot:        decimal.NewFromInt(20),
		DeliveryFlatFee:           decimal.NewFromInt(50),
		InstallFlatFee:            decimal.NewFromInt(100),
	}
}

// Get returns the singleton settings row, creating it with defaults if absent.
func (s *settingsService) Get(ctx context.Context) (*entity.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return current, nil
	}
	return s.repo.Store(ctx, defaultSettings())
}

// Update persists new rate constants. When the warehouse address text
// changed, it is re-geocoded first and the canonical formatted address and
// place id are stored alongside it; an unrecognized address rejects the
// whole update.
func (s *settingsService) Update(ctx context.Context, req settingspkg.UpdateSettingsRequest) (*entity.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.WarehouseAddress != "" && req.WarehouseAddress != current.WarehouseAddress {
		match, err := s.maps.ValidateAddress(ctx, req.WarehouseAddress)
		if err != nil {
			if errors.Is(err, geo.ErrAddressNotFound) {
				return nil, fmt.Errorf("%w: %s", settingspkg.ErrInvalidWarehouseAddress, req.WarehouseAddress)
			}
			return nil, err
		}
		current.WarehouseAddress = req.WarehouseAddress
		current.WarehouseFormattedAddress = &match.FormattedAddress
		current.WarehousePlaceID = &match.PlaceID
	}

	current.CostPerMile = req.CostPerMile
	current.InstallFeePerFoot = req.InstallFeePerFoot
	current.RentalPricePerFoot = req.RentalPricePerFoot
	current.DeliveryFlatFee = req.DeliveryFlatFee
	current.InstallFlatFee = req.InstallFlatFee

	return s.repo.Update(ctx, current)
}
