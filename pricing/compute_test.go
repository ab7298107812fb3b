package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samedayramps/samedayramps-application/entity"
)

func testSettings() *entity.Settings {
	return &entity.Settings{
		ID:                 entity.SettingsID,
		CostPerMile:        decimal.RequireFromString("2.5"),
		InstallFeePerFoot:  decimal.NewFromInt(15),
		RentalPricePerFoot: decimal.NewFromInt(20),
		DeliveryFlatFee:    decimal.NewFromInt(50),
		InstallFlatFee:     decimal.NewFromInt(100),
	}
}

func TestComputeBreakdown(t *testing.T) {
	// 10 miles, 20ft ramp: delivery 10*2.5*2+50, install 20*15+100,
	// monthly 20*20, upfront delivery+install.
	b := Compute(decimal.NewFromInt(10), decimal.NewFromInt(20), testSettings())

	require.Equal(t, "100.00", b.DeliveryFee.StringFixed(2))
	require.Equal(t, "400.00", b.InstallFee.StringFixed(2))
	require.Equal(t, "400.00", b.MonthlyRate.StringFixed(2))
	require.Equal(t, "500.00", b.UpfrontCost.StringFixed(2))
	require.Equal(t, "10.0", b.DistanceMiles.StringFixed(1))
}

func TestComputeRounding(t *testing.T) {
	// 12.345 miles: raw delivery 12.345*2.5*2+50 = 111.725, rounds to 111.73.
	b := Compute(decimal.RequireFromString("12.345"), decimal.NewFromInt(16), testSettings())

	require.Equal(t, "111.73", b.DeliveryFee.StringFixed(2))
	require.Equal(t, "12.3", b.DistanceMiles.StringFixed(1))
	require.True(t, b.UpfrontCost.Equal(b.DeliveryFee.Add(b.InstallFee)))
}

func TestComputeZeroDistance(t *testing.T) {
	b := Compute(decimal.Zero, decimal.NewFromInt(10), testSettings())

	require.Equal(t, "50.00", b.DeliveryFee.StringFixed(2))
	require.Equal(t, "250.00", b.InstallFee.StringFixed(2))
	require.Equal(t, "300.00", b.UpfrontCost.StringFixed(2))
}
