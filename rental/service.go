package rental

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/entity"
)

// Action is a workflow action name as received from the API.
type Action string

const (
	ActionSendAgreement        Action = "sendAgreement"
	ActionMarkAgreementSigned  Action = "markAgreementSigned"
	ActionScheduleInstallation Action = "scheduleInstallation"
	ActionMarkInstalled        Action = "markInstalled"
	ActionScheduleRemoval      Action = "scheduleRemoval"
	ActionCompleteRemoval      Action = "completeRemoval"
	ActionRevertStage          Action = "revertStage"
)

var (
	// ErrNotFound reports an unknown rental id or contract id.
	ErrNotFound = errors.New("rental not found")
	// ErrInvalidAction reports an action name outside the workflow table.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidState reports an action whose precondition state does not
	// match the rental's current status.
	ErrInvalidState = errors.New("invalid state for action")
)

// Service exposes rental reads and the staged workflow, including the
// webhook-driven signature completion.
type Service interface {
	GetRental(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	ListRentals(ctx context.Context) ([]entity.Rental, error)
	ApplyAction(ctx context.Context, id uuid.UUID, action Action) (*entity.Rental, error)
	// CompleteSignature handles the provider's contract-signed event. It is
	// idempotent: a rental already AGREEMENT_SIGNED is returned unchanged
	// with applied=false and no notification is re-fired.
	CompleteSignature(ctx context.Context, contractID, signedPDFURL string) (r *entity.Rental, applied bool, err error)
}
