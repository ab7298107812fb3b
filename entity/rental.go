package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RentalStatus enumerates the lifecycle of a rental after conversion.
type RentalStatus string

const (
	RentalPending               RentalStatus = "PENDING"                // converted, agreement not yet sent
	RentalAgreementSent         RentalStatus = "AGREEMENT_SENT"         // e-signature contract created
	RentalAgreementSigned       RentalStatus = "AGREEMENT_SIGNED"       // customer signed
	RentalInstallationScheduled RentalStatus = "INSTALLATION_SCHEDULED" // install date agreed
	RentalActive                RentalStatus = "ACTIVE"                 // ramp installed
	RentalRemovalScheduled      RentalStatus = "REMOVAL_SCHEDULED"      // removal date agreed
	RentalCompleted             RentalStatus = "COMPLETED"              // ramp removed
	// Side states set outside the staged workflow.
	RentalOnHold    RentalStatus = "ON_HOLD"
	RentalCancelled RentalStatus = "CANCELLED"
)

// Rental is the operational record created when a quote converts.
//
// UpfrontCost and MonthlyRate are snapshot-copied from the quote at
// conversion time; later quote edits do not propagate.
type Rental struct {
	ID                    uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID            uuid.UUID       `json:"customer_id" gorm:"type:uuid;index;not null"`
	Customer              Customer        `json:"customer" gorm:"foreignKey:CustomerID"`
	QuoteID               *uuid.UUID      `json:"quote_id,omitempty" gorm:"type:uuid;index"`
	Quote                 *Quote          `json:"quote,omitempty" gorm:"foreignKey:QuoteID"`
	Status                RentalStatus    `json:"status" gorm:"type:text;index;not null;default:'PENDING'"`
	StartDate             time.Time       `json:"start_date" gorm:"not null"`
	UpfrontCost           decimal.Decimal `json:"upfront_cost" gorm:"type:decimal(10,2);not null"`
	MonthlyRate           decimal.Decimal `json:"monthly_rate" gorm:"type:decimal(10,2);not null"`
	TotalPaid             decimal.Decimal `json:"total_paid" gorm:"type:decimal(10,2);not null;default:0"`
	NextPaymentDate       *time.Time      `json:"next_payment_date,omitempty"`
	ESignaturesContractID *string         `json:"esignatures_contract_id,omitempty" gorm:"column:esignatures_contract_id;type:text;index"`
	SignedAgreementURL    *string         `json:"signed_agreement_url,omitempty" gorm:"type:text"`
	InstallationDate      *time.Time      `json:"installation_date,omitempty"`
	RemovalDate           *time.Time      `json:"removal_date,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	DeletedAt             gorm.DeletedAt  `json:"-" gorm:"index"`
}
