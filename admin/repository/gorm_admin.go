package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adminpkg "github.com/samedayramps/samedayramps-application/admin"
	"github.com/samedayramps/samedayramps-application/entity"
)

type GormAdminRepo struct{ db *gorm.DB }

func NewGormAdminRepo(db *gorm.DB) adminpkg.AdminRepository { return &GormAdminRepo{db: db} }

func (r *GormAdminRepo) StoreAdmin(ctx context.Context, a *entity.AdminUser) (*entity.AdminUser, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *GormAdminRepo) GetAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var a entity.AdminUser
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var a entity.AdminUser
	err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
