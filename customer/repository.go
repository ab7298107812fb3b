package customer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/entity"
)

// SearchFilter narrows and pages a customer listing.
type SearchFilter struct {
	Search         string // matches name, email or phone
	Status         *entity.CustomerStatus
	LifecycleStage *entity.CustomerLifecycleStage
	Priority       *entity.CustomerPriority
	Page           int
	Limit          int
	SortBy         string // name, email, created_at, last_contact_date
	SortOrder      string // asc or desc
}

// Repository specifies customer related database operations. GetByEmail
// returns (nil, nil) when no customer carries the email.
type Repository interface {
	Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Search(ctx context.Context, f SearchFilter) ([]entity.Customer, int64, error)
	TouchLastContact(ctx context.Context, id uuid.UUID, at time.Time) error

	StoreCommunication(ctx context.Context, c *entity.Communication) (*entity.Communication, error)
	ListCommunications(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]entity.Communication, int64, error)
	StoreTask(ctx context.Context, t *entity.Task) (*entity.Task, error)
	ListTasks(ctx context.Context, customerID uuid.UUID, status *entity.TaskStatus, limit, offset int) ([]entity.Task, int64, error)
}
