package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunicationType categorizes a logged customer interaction.
type CommunicationType string

const (
	CommQuoteRequest           CommunicationType = "QUOTE_REQUEST"
	CommQuoteFollowup          CommunicationType = "QUOTE_FOLLOWUP"
	CommInstallationScheduling CommunicationType = "INSTALLATION_SCHEDULING"
	CommPaymentDiscussion      CommunicationType = "PAYMENT_DISCUSSION"
	CommSupportRequest         CommunicationType = "SUPPORT_REQUEST"
	CommGeneralInquiry         CommunicationType = "GENERAL_INQUIRY"
	CommFeedback               CommunicationType = "FEEDBACK"
)

// CommunicationDirection tells who initiated the contact.
type CommunicationDirection string

const (
	DirectionInbound  CommunicationDirection = "INBOUND"
	DirectionOutbound CommunicationDirection = "OUTBOUND"
)

// Communication is a logged interaction with a customer. Creating one
// touches the customer's last-contact date.
type Communication struct {
	ID            uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID    uuid.UUID              `json:"customer_id" gorm:"type:uuid;index;not null"`
	Type          CommunicationType      `json:"type" gorm:"type:text;not null"`
	Direction     CommunicationDirection `json:"direction" gorm:"type:text;not null"`
	Subject       *string                `json:"subject,omitempty" gorm:"type:text"`
	Content       string                 `json:"content" gorm:"type:text;not null"`
	ContactMethod PreferredContact       `json:"contact_method" gorm:"type:text;not null"`
	PhoneNumber   *string                `json:"phone_number,omitempty" gorm:"type:text"`
	EmailAddress  *string                `json:"email_address,omitempty" gorm:"type:text"`
	IsImportant   bool                   `json:"is_important" gorm:"not null;default:false"`
	FollowUpDate  *time.Time             `json:"follow_up_date,omitempty"`
	CreatedBy     string                 `json:"created_by" gorm:"type:text;not null"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	DeletedAt     gorm.DeletedAt         `json:"-" gorm:"index"`
}

// TaskStatus enumerates follow-up task progress.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// Task is a follow-up item attached to a customer, optionally tied to a quote.
type Task struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID  uuid.UUID        `json:"customer_id" gorm:"type:uuid;index;not null"`
	QuoteID     *uuid.UUID       `json:"quote_id,omitempty" gorm:"type:uuid;index"`
	Title       string           `json:"title" gorm:"type:text;not null"`
	Description *string          `json:"description,omitempty" gorm:"type:text"`
	Priority    CustomerPriority `json:"priority" gorm:"type:text;not null;default:'STANDARD'"`
	Status      TaskStatus       `json:"status" gorm:"type:text;index;not null;default:'PENDING'"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	AssignedTo  *string          `json:"assigned_to,omitempty" gorm:"type:text"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`
}
