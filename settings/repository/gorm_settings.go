package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/samedayramps/samedayramps-application/entity"
	settingspkg "github.com/samedayramps/samedayramps-application/settings"
)

type GormSettingsRepo struct{ db *gorm.DB }

func NewGormSettingsRepo(db *gorm.DB) settingspkg.Repository { return &GormSettingsRepo{db: db} }

func (r *GormSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	var s entity.Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", entity.SettingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSettingsRepo) Store(ctx context.Context, s *entity.Settings) (*entity.Settings, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormSettingsRepo) Update(ctx context.Context, s *entity.Settings) (*entity.Settings, error) {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
