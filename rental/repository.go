package rental

import (
	"context"

	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/entity"
)

// Mutation is the set of column updates one transition commits atomically.
type Mutation struct {
	Updates map[string]interface{}
}

// DecideFunc inspects the locked rental and returns the mutation to apply,
// or an error to abort with no writes. An empty mutation is a legal no-op
// (used for duplicate webhook deliveries).
type DecideFunc func(r *entity.Rental) (*Mutation, error)

// Repository defines DB operations for rentals.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	// GetByContractID looks a rental up by its external e-signature contract
	// id. Returns (nil, nil) when no rental references the contract.
	GetByContractID(ctx context.Context, contractID string) (*entity.Rental, error)
	List(ctx context.Context) ([]entity.Rental, error)
	// Transition locks the rental row, runs decide, and applies the returned
	// mutation in the same transaction.
	Transition(ctx context.Context, id uuid.UUID, decide DecideFunc) (*entity.Rental, error)
}
