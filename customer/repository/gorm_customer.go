package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerpkg "github.com/samedayramps/samedayramps-application/customer"
	"github.com/samedayramps/samedayramps-application/entity"
)

type GormCustomerRepo struct{ db *gorm.DB }

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository { return &GormCustomerRepo{db: db} }

func (r *GormCustomerRepo) Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) Search(ctx context.Context, f customerpkg.SearchFilter) ([]entity.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Customer{})

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.LifecycleStage != nil {
		q = q.Where("lifecycle_stage = ?", *f.LifecycleStage)
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "updated_at DESC"
	dir := "DESC"
	if f.SortOrder == "asc" {
		dir = "ASC"
	}
	switch f.SortBy {
	case "name":
		order = "first_name " + dir
	case "email":
		order = "email " + dir
	case "created_at":
		order = "created_at " + dir
	case "last_contact_date":
		order = "last_contact_date " + dir
	}

	var list []entity.Customer
	if err := q.Order(order).Limit(f.Limit).Offset((f.Page - 1) * f.Limit).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *GormCustomerRepo) TouchLastContact(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).Update("last_contact_date", at).Error
}

func (r *GormCustomerRepo) StoreCommunication(ctx context.Context, c *entity.Communication) (*entity.Communication, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) ListCommunications(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]entity.Communication, int64, error) {
	base := r.db.WithContext(ctx).Model(&entity.Communication{}).Where("customer_id = ?", customerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []entity.Communication
	if err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *GormCustomerRepo) StoreTask(ctx context.Context, t *entity.Task) (*entity.Task, error) {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *GormCustomerRepo) ListTasks(ctx context.Context, customerID uuid.UUID, status *entity.TaskStatus, limit, offset int) ([]entity.Task, int64, error) {
	base := r.db.WithContext(ctx).Model(&entity.Task{}).Where("customer_id = ?", customerID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []entity.Task
	if err := base.Order("due_date ASC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
