package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerLifecycleStage tracks where a customer sits in the sales funnel.
type CustomerLifecycleStage string

const (
	LifecycleLead           CustomerLifecycleStage = "LEAD"
	LifecycleProspect       CustomerLifecycleStage = "PROSPECT"
	LifecycleCustomer       CustomerLifecycleStage = "CUSTOMER"
	LifecycleFormerCustomer CustomerLifecycleStage = "FORMER_CUSTOMER"
	LifecycleAdvocate       CustomerLifecycleStage = "ADVOCATE"
)

// CustomerPriority is the admin-assigned handling priority.
type CustomerPriority string

const (
	PriorityLow      CustomerPriority = "LOW"
	PriorityStandard CustomerPriority = "STANDARD"
	PriorityHigh     CustomerPriority = "HIGH"
	PriorityUrgent   CustomerPriority = "URGENT"
)

// CustomerStatus marks whether the record is workable.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE"
	CustomerBlocked  CustomerStatus = "BLOCKED"
)

// CustomerType classifies who is renting.
type CustomerType string

const (
	CustomerIndividual         CustomerType = "INDIVIDUAL"
	CustomerFamily             CustomerType = "FAMILY"
	CustomerHealthcareFacility CustomerType = "HEALTHCARE_FACILITY"
	CustomerContractor         CustomerType = "CONTRACTOR"
	CustomerPropertyManager    CustomerType = "PROPERTY_MANAGER"
)

// PreferredContact is the channel the customer asked to be reached on.
type PreferredContact string

const (
	ContactEmail    PreferredContact = "EMAIL"
	ContactPhone    PreferredContact = "PHONE"
	ContactText     PreferredContact = "TEXT"
	ContactInPerson PreferredContact = "IN_PERSON"
)

// Customer is the root record quotes and rentals hang off. Customers are
// upserted by email on first quote submission and never hard-deleted.
type Customer struct {
	ID               uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName        string                 `json:"first_name" gorm:"type:text;not null"`
	LastName         string                 `json:"last_name" gorm:"type:text;not null"`
	Email            string                 `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Phone            string                 `json:"phone" gorm:"type:text;not null"`
	AlternatePhone   *string                `json:"alternate_phone,omitempty" gorm:"type:text"`
	Address          *string                `json:"address,omitempty" gorm:"type:text"`
	City             *string                `json:"city,omitempty" gorm:"type:text"`
	State            *string                `json:"state,omitempty" gorm:"type:text"`
	ZipCode          *string                `json:"zip_code,omitempty" gorm:"type:text"`
	LifecycleStage   CustomerLifecycleStage `json:"lifecycle_stage" gorm:"type:text;index;not null;default:'LEAD'"`
	Priority         CustomerPriority       `json:"priority" gorm:"type:text;index;not null;default:'STANDARD'"`
	Status           CustomerStatus         `json:"status" gorm:"type:text;index;not null;default:'ACTIVE'"`
	CustomerType     CustomerType           `json:"customer_type" gorm:"type:text;not null;default:'INDIVIDUAL'"`
	PreferredContact PreferredContact       `json:"preferred_contact" gorm:"type:text;not null;default:'PHONE'"`
	ReferralSource   *string                `json:"referral_source,omitempty" gorm:"type:text"`
	Tags             *string                `json:"tags,omitempty" gorm:"type:text"` // comma-separated
	Notes            *string                `json:"notes,omitempty" gorm:"type:text"`
	LastContactDate  *time.Time             `json:"last_contact_date,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	DeletedAt        gorm.DeletedAt         `json:"-" gorm:"index"`
}

// FullName joins first and last name for email bodies and contract signers.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
