package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed primary key of the single settings row.
const SettingsID = "singleton"

// Settings is the singleton configuration record behind the pricing
// calculator: rate constants plus the validated warehouse address the
// distance lookup originates from.
type Settings struct {
	ID                        string          `json:"id" gorm:"type:text;primaryKey"`
	CostPerMile               decimal.Decimal `json:"cost_per_mile" gorm:"type:decimal(10,2);not null"`
	InstallFeePerFoot         decimal.Decimal `json:"install_fee_per_foot" gorm:"type:decimal(10,2);not null"`
	RentalPricePerFoot        decimal.Decimal `json:"rental_price_per_foot" gorm:"type:decimal(10,2);not null"`
	DeliveryFlatFee           decimal.Decimal `json:"delivery_flat_fee" gorm:"type:decimal(10,2);not null"`
	InstallFlatFee            decimal.Decimal `json:"install_flat_fee" gorm:"type:decimal(10,2);not null"`
	WarehouseAddress          string          `json:"warehouse_address" gorm:"type:text;not null"`
	WarehouseFormattedAddress *string         `json:"warehouse_formatted_address,omitempty" gorm:"type:text"`
	WarehousePlaceID          *string         `json:"warehouse_place_id,omitempty" gorm:"type:text"`
	CreatedAt                 time.Time       `json:"created_at"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}
