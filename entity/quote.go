package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuoteStatus enumerates the lifecycle of a quote.
type QuoteStatus string

const (
	QuotePending       QuoteStatus = "PENDING"               // submitted, awaiting site details
	QuoteInfoGathering QuoteStatus = "INFORMATION_GATHERING" // measurements being collected
	QuoteQuoted        QuoteStatus = "QUOTED"                // price provided to the customer
	QuoteAccepted      QuoteStatus = "ACCEPTED"              // customer accepted the price
	QuoteConverted     QuoteStatus = "CONVERTED"             // rental created, quote closed out
	// Terminal side states set outside the staged workflow.
	QuoteDeclined QuoteStatus = "DECLINED"
	QuoteExpired  QuoteStatus = "EXPIRED"
)

// Quote is a priced rental proposal for one customer.
//
// The six priced fields (DeliveryFee, InstallFee, RampLength, UpfrontCost,
// MonthlyRate, TotalEstimatedCost) are all-or-nothing: written together when
// the quote moves to QUOTED and nulled together when that step is reverted.
type Quote struct {
	ID                  uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID          uuid.UUID        `json:"customer_id" gorm:"type:uuid;index;not null"`
	Customer            Customer         `json:"customer" gorm:"foreignKey:CustomerID"`
	Status              QuoteStatus      `json:"status" gorm:"type:text;index;not null;default:'PENDING'"`
	InstallationAddress string           `json:"installation_address" gorm:"type:text;not null"`
	AdminNotes          *string          `json:"admin_notes,omitempty" gorm:"type:text"`
	CustomerNotes       *string          `json:"customer_notes,omitempty" gorm:"type:text"`
	InformationGathered bool             `json:"information_gathered" gorm:"not null;default:false"`
	PriceProvided       bool             `json:"price_provided" gorm:"not null;default:false"`
	PriceProvidedDate   *time.Time       `json:"price_provided_date,omitempty"`
	CustomerAccepted    bool             `json:"customer_accepted" gorm:"not null;default:false"`
	AcceptedDate        *time.Time       `json:"accepted_date,omitempty"`
	DeliveryFee         *decimal.Decimal `json:"delivery_fee,omitempty" gorm:"type:decimal(10,2)"`
	InstallFee          *decimal.Decimal `json:"install_fee,omitempty" gorm:"type:decimal(10,2)"`
	RampLength          *decimal.Decimal `json:"ramp_length,omitempty" gorm:"type:decimal(10,2)"`
	UpfrontCost         *decimal.Decimal `json:"upfront_cost,omitempty" gorm:"type:decimal(10,2)"`
	MonthlyRate         *decimal.Decimal `json:"monthly_rate,omitempty" gorm:"type:decimal(10,2)"`
	TotalEstimatedCost  *decimal.Decimal `json:"total_estimated_cost,omitempty" gorm:"type:decimal(10,2)"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `json:"-" gorm:"index"`
}
