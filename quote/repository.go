package quote

import (
	"context"

	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/entity"
)

// Mutation describes the writes one workflow transition commits as a single
// unit: quote column updates plus, for conversion and its revert, the rental
// side effect.
type Mutation struct {
	Updates       map[string]interface{}
	CreateRental  *entity.Rental
	DeleteRentals bool
}

// DecideFunc inspects the locked quote (and, when it is CONVERTED, its
// rentals) and returns the mutation to apply, or an error to abort with no
// writes at all.
type DecideFunc func(q *entity.Quote, rentals []entity.Rental) (*Mutation, error)

// Repository defines DB operations for quotes.
type Repository interface {
	Store(ctx context.Context, q *entity.Quote) (*entity.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	List(ctx context.Context) ([]entity.Quote, error)
	// UpdateContact writes customer contact fields and quote
	// address/notes fields in one transaction.
	UpdateContact(ctx context.Context, q *entity.Quote, c *entity.Customer) (*entity.Quote, error)
	// Transition locks the quote row, runs decide, and applies the returned
	// mutation atomically. The precondition check and the write happen under
	// the same row lock so two concurrent actions cannot both pass the check
	// from a stale read.
	Transition(ctx context.Context, id uuid.UUID, decide DecideFunc) (*entity.Quote, error)
}
