package settings

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/samedayramps/samedayramps-application/entity"
)

// ErrInvalidWarehouseAddress means the new warehouse address could not be
// geocoded and was rejected before any write.
var ErrInvalidWarehouseAddress = errors.New("invalid warehouse address")

// UpdateSettingsRequest carries the calculator rate constants and the
// warehouse address. The address is re-validated against the geocoding
// provider only when it differs from the stored one.
type UpdateSettingsRequest struct {
	WarehouseAddress   string
	CostPerMile        decimal.Decimal
	InstallFeePerFoot  decimal.Decimal
	RentalPricePerFoot decimal.Decimal
	DeliveryFlatFee    decimal.Decimal
	InstallFlatFee     decimal.Decimal
}

// Service exposes the singleton settings record. Get lazily creates the row
// with defaults on first read.
type Service interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (*entity.Settings, error)
}
