package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/samedayramps/samedayramps-application/entity"
)

var two = decimal.NewFromInt(2)

// Breakdown is one computed price quote. Monetary values are rounded to two
// decimal places; the distance is rounded to one.
type Breakdown struct {
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	InstallFee    decimal.Decimal `json:"install_fee"`
	MonthlyRate   decimal.Decimal `json:"monthly_rate"`
	UpfrontCost   decimal.Decimal `json:"upfront_cost"`
	DistanceMiles decimal.Decimal `json:"distance_miles"`
}

// Compute derives the fee breakdown from a driving distance, a ramp length
// in feet and the current rate settings:
//
//	deliveryFee = distance * costPerMile * 2 (round trip) + deliveryFlatFee
//	installFee  = rampLength * installFeePerFoot + installFlatFee
//	monthlyRate = rampLength * rentalPricePerFoot
//	upfrontCost = deliveryFee + installFee
func Compute(distanceMiles, rampLength decimal.Decimal, s *entity.Settings) Breakdown {
	deliveryFee := distanceMiles.Mul(s.CostPerMile).Mul(two).Add(s.DeliveryFlatFee).Round(2)
	installFee := rampLength.Mul(s.InstallFeePerFoot).Add(s.InstallFlatFee).Round(2)
	monthlyRate := rampLength.Mul(s.RentalPricePerFoot).Round(2)

	return Breakdown{
		DeliveryFee:   deliveryFee,
		InstallFee:    installFee,
		MonthlyRate:   monthlyRate,
		UpfrontCost:   deliveryFee.Add(installFee),
		DistanceMiles: distanceMiles.Round(1),
	}
}
