package customer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/entity"
)

var (
	// ErrNotFound reports an unknown customer id.
	ErrNotFound = errors.New("customer not found")
	// ErrEmailExists reports a create colliding with an existing email.
	ErrEmailExists = errors.New("customer with this email already exists")
)

// CreateCustomerRequest carries the data for a directly-created customer
// record (as opposed to the upsert that happens on quote submission).
type CreateCustomerRequest struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	AlternatePhone   *string
	Address          *string
	City             *string
	State            *string
	ZipCode          *string
	CustomerType     *entity.CustomerType
	PreferredContact *entity.PreferredContact
	Priority         *entity.CustomerPriority
	ReferralSource   *string
	Tags             *string
	Notes            *string
}

// UpdateCustomerRequest mirrors CreateCustomerRequest plus the
// classification fields an admin can change later.
type UpdateCustomerRequest struct {
	CreateCustomerRequest
	LifecycleStage *entity.CustomerLifecycleStage
	Status         *entity.CustomerStatus
}

// LogCommunicationRequest records one customer interaction.
type LogCommunicationRequest struct {
	Type          entity.CommunicationType
	Direction     entity.CommunicationDirection
	Subject       *string
	Content       string
	ContactMethod entity.PreferredContact
	PhoneNumber   *string
	EmailAddress  *string
	IsImportant   bool
	FollowUpDate  *time.Time
	CreatedBy     string
}

// CreateTaskRequest adds a follow-up task for a customer.
type CreateTaskRequest struct {
	Title       string
	Description *string
	Priority    *entity.CustomerPriority
	DueDate     *time.Time
	AssignedTo  *string
	QuoteID     *uuid.UUID
}

// Service exposes customer-management operations.
type Service interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*entity.Customer, error)
	SearchCustomers(ctx context.Context, f SearchFilter) ([]entity.Customer, int64, error)
	// LogCommunication stores the interaction and touches the customer's
	// last-contact date.
	LogCommunication(ctx context.Context, customerID uuid.UUID, req LogCommunicationRequest) (*entity.Communication, error)
	ListCommunications(ctx context.Context, customerID uuid.UUID, page, limit int) ([]entity.Communication, int64, error)
	CreateTask(ctx context.Context, customerID uuid.UUID, req CreateTaskRequest) (*entity.Task, error)
	ListTasks(ctx context.Context, customerID uuid.UUID, status *entity.TaskStatus, page, limit int) ([]entity.Task, int64, error)
}
