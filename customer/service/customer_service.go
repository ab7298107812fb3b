package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	customerpkg "github.com/samedayramps/samedayramps-application/customer"
	"github.com/samedayramps/samedayramps-application/entity"
)

// customerService implements customer.Service.
type customerService struct {
	repo customerpkg.Repository
}

// NewCustomerService constructs a customer.Service backed by the provided repository.
func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req customerpkg.CreateCustomerRequest) (*entity.Customer, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, customerpkg.ErrEmailExists
	}

	c := &entity.Customer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		AlternatePhone: req.AlternatePhone,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		ReferralSource: req.ReferralSource,
		Tags:           req.Tags,
		Notes:          req.Notes,
	}
	if req.CustomerType != nil {
		c.CustomerType = *req.CustomerType
	}
	if req.PreferredContact != nil {
		c.PreferredContact = *req.PreferredContact
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	return s.repo.Store(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req customerpkg.UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != c.Email {
		existing, err := s.repo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, customerpkg.ErrEmailExists
		}
		c.Email = req.Email
	}

	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Phone = req.Phone
	c.AlternatePhone = req.AlternatePhone
	c.Address = req.Address
	c.City = req.City
	c.State = req.State
	c.ZipCode = req.ZipCode
	c.ReferralSource = req.ReferralSource
	c.Tags = req.Tags
	c.Notes = req.Notes
	if req.CustomerType != nil {
		c.CustomerType = *req.CustomerType
	}
	if req.PreferredContact != nil {
		c.PreferredContact = *req.PreferredContact
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.LifecycleStage != nil {
		c.LifecycleStage = *req.LifecycleStage
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	return s.repo.Update(ctx, c)
}

func (s *customerService) SearchCustomers(ctx context.Context, f customerpkg.SearchFilter) ([]entity.Customer, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	return s.repo.Search(ctx, f)
}

func (s *customerService) LogCommunication(ctx context.Context, customerID uuid.UUID, req customerpkg.LogCommunicationRequest) (*entity.Communication, error) {
	if _, err := s.repo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	comm, err := s.repo.StoreCommunication(ctx, &entity.Communication{
		CustomerID:    customerID,
		Type:          req.Type,
		Direction:     req.Direction,
		Subject:       req.Subject,
		Content:       req.Content,
		ContactMethod: req.ContactMethod,
		PhoneNumber:   req.PhoneNumber,
		EmailAddress:  req.EmailAddress,
		IsImportant:   req.IsImportant,
		FollowUpDate:  req.FollowUpDate,
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.TouchLastContact(ctx, customerID, time.Now()); err != nil {
		return nil, err
	}
	return comm, nil
}

func (s *customerService) ListCommunications(ctx context.Context, customerID uuid.UUID, page, limit int) ([]entity.Communication, int64, error) {
	limit, offset := pageToRange(page, limit)
	return s.repo.ListCommunications(ctx, customerID, limit, offset)
}

func (s *customerService) CreateTask(ctx context.Context, customerID uuid.UUID, req customerpkg.CreateTaskRequest) (*entity.Task, error) {
	if _, err := s.repo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	t := &entity.Task{
		CustomerID:  customerID,
		QuoteID:     req.QuoteID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskPending,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	} else {
		t.Priority = entity.PriorityStandard
	}
	return s.repo.StoreTask(ctx, t)
}

func (s *customerService) ListTasks(ctx context.Context, customerID uuid.UUID, status *entity.TaskStatus, page, limit int) ([]entity.Task, int64, error) {
	limit, offset := pageToRange(page, limit)
	return s.repo.ListTasks(ctx, customerID, status, limit, offset)
}

func pageToRange(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return limit, (page - 1) * limit
}
