package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samedayramps/samedayramps-application/entity"
	"github.com/samedayramps/samedayramps-application/geo"
	settingspkg "github.com/samedayramps/samedayramps-application/settings"
)

type fakeSettingsRepo struct {
	row *entity.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if f.row == nil {
		return nil, nil
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeSettingsRepo) Store(_ context.Context, s *entity.Settings) (*entity.Settings, error) {
	cp := *s
	f.row = &cp
	return s, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) (*entity.Settings, error) {
	cp := *s
	f.row = &cp
	return s, nil
}

type fakeGeo struct {
	match *geo.PlaceMatch
	err   error
	calls int
}

func (f *fakeGeo) DriveDistanceMiles(_ context.Context, _, _ string) (float64, error) {
	return 0, geo.ErrNoRoute
}

func (f *fakeGeo) ValidateAddress(_ context.Context, _ string) (*geo.PlaceMatch, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.match, nil
}

func updateReq(address string) settingspkg.UpdateSettingsRequest {
	return settingspkg.UpdateSettingsRequest{
		WarehouseAddress:   address,
		CostPerMile:        decimal.RequireFromString("3.0"),
		InstallFeePerFoot:  decimal.NewFromInt(18),
		RentalPricePerFoot: decimal.NewFromInt(22),
		DeliveryFlatFee:    decimal.NewFromInt(60),
		InstallFlatFee:     decimal.NewFromInt(120),
	}
}

func TestGetCreatesDefaultsOnFirstRead(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo, &fakeGeo{})

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, entity.SettingsID, s.ID)
	require.NotNil(t, s.WarehousePlaceID)
	require.True(t, s.CostPerMile.Equal(decimal.RequireFromString("2.5")))
	require.NotNil(t, repo.row)

	// Second read returns the stored row, no re-create.
	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, s.ID, again.ID)
}

func TestUpdateRegeocodesOnAddressChange(t *testing.T) {
	repo := &fakeSettingsRepo{}
	maps := &fakeGeo{match: &geo.PlaceMatch{
		FormattedAddress: "456 Warehouse Rd, Dallas, TX 75201, USA",
		PlaceID:          "place-456",
	}}
	svc := NewSettingsService(repo, maps)

	s, err := svc.Update(context.Background(), updateReq("456 Warehouse Rd, Dallas, TX"))
	require.NoError(t, err)
	require.Equal(t, 1, maps.calls)
	require.Equal(t, "456 Warehouse Rd, Dallas, TX", s.WarehouseAddress)
	require.Equal(t, "place-456", *s.WarehousePlaceID)
	require.Equal(t, "456 Warehouse Rd, Dallas, TX 75201, USA", *s.WarehouseFormattedAddress)
	require.True(t, s.CostPerMile.Equal(decimal.RequireFromString("3.0")))
}

func TestUpdateSkipsGeocodeWhenAddressUnchanged(t *testing.T) {
	repo := &fakeSettingsRepo{}
	maps := &fakeGeo{}
	svc := NewSettingsService(repo, maps)

	current, err := svc.Get(context.Background())
	require.NoError(t, err)

	s, err := svc.Update(context.Background(), updateReq(current.WarehouseAddress))
	require.NoError(t, err)
	require.Equal(t, 0, maps.calls)
	require.Equal(t, *current.WarehousePlaceID, *s.WarehousePlaceID)
	require.True(t, s.InstallFlatFee.Equal(decimal.NewFromInt(120)))
}

func TestUpdateRejectsUnrecognizedAddress(t *testing.T) {
	repo := &fakeSettingsRepo{}
	maps := &fakeGeo{err: geo.ErrAddressNotFound}
	svc := NewSettingsService(repo, maps)

	before, err := svc.Get(context.Background())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), updateReq("nowhere at all"))
	require.ErrorIs(t, err, settingspkg.ErrInvalidWarehouseAddress)

	// Nothing was written.
	after, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, before.WarehouseAddress, after.WarehouseAddress)
	require.True(t, after.CostPerMile.Equal(before.CostPerMile))
}
