package quote

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samedayramps/samedayramps-application/entity"
)

// Action is a workflow action name as received from the API.
type Action string

const (
	ActionMarkInfoGathered Action = "markInfoGathered"
	ActionProvidePrice     Action = "providePrice"
	ActionAcceptQuote      Action = "acceptQuote"
	ActionConvertToRental  Action = "convertToRental"
	ActionRevertStage      Action = "revertStage"
)

var (
	// ErrNotFound reports an unknown quote id.
	ErrNotFound = errors.New("quote not found")
	// ErrInvalidAction reports an action name outside the workflow table.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidState reports an action whose precondition state does not
	// match the quote's current status. Distinct from validation errors so
	// callers can branch on "wrong state" vs "bad input".
	ErrInvalidState = errors.New("invalid state for action")
	// ErrPriceRequired reports a providePrice call without price fields.
	ErrPriceRequired = errors.New("price fields are required for providePrice")
	// ErrRevertBlocked guards the destructive revert-from-CONVERTED: the
	// associated rental would be deleted while payments are recorded on it.
	ErrRevertBlocked = errors.New("cannot revert a converted quote with recorded payments")
)

// CreateQuoteRequest is the initial quote submission. The customer is
// upserted by email.
type CreateQuoteRequest struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	InstallationAddress string
	CustomerNotes       *string
}

// UpdateQuoteRequest edits contact and address fields outside the workflow.
type UpdateQuoteRequest struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	AlternatePhone      *string
	InstallationAddress string
	AdminNotes          *string
}

// PriceInput carries the six priced fields persisted together by
// providePrice. Values come from the pricing engine; the workflow only
// snapshots them.
type PriceInput struct {
	DeliveryFee        decimal.Decimal
	InstallFee         decimal.Decimal
	RampLength         decimal.Decimal
	UpfrontCost        decimal.Decimal
	MonthlyRate        decimal.Decimal
	TotalEstimatedCost decimal.Decimal
}

// Service exposes quote CRUD and the staged workflow.
type Service interface {
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (*entity.Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	ListQuotes(ctx context.Context) ([]entity.Quote, error)
	UpdateQuote(ctx context.Context, id uuid.UUID, req UpdateQuoteRequest) (*entity.Quote, error)
	// ApplyAction runs one workflow action. price is required for
	// providePrice and ignored otherwise.
	ApplyAction(ctx context.Context, id uuid.UUID, action Action, price *PriceInput) (*entity.Quote, error)
}
