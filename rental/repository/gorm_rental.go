package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/samedayramps/samedayramps-application/entity"
	rentalpkg "github.com/samedayramps/samedayramps-application/rental"
)

type GormRentalRepo struct{ db *gorm.DB }

func NewGormRentalRepo(db *gorm.DB) rentalpkg.Repository { return &GormRentalRepo{db: db} }

func (r *GormRentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	var rec entity.Rental
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Quote").First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rentalpkg.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GormRentalRepo) GetByContractID(ctx context.Context, contractID string) (*entity.Rental, error) {
	var rec entity.Rental
	err := r.db.WithContext(ctx).Preload("Customer").
		First(&rec, "esignatures_contract_id = ?", contractID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GormRentalRepo) List(ctx context.Context) ([]entity.Rental, error) {
	var list []entity.Rental
	if err := r.db.WithContext(ctx).Preload("Customer").Preload("Quote").
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Transition locks the rental row FOR UPDATE, runs decide against the fresh
// state and applies the mutation inside the same transaction so concurrent
// actions cannot both pass the precondition check.
func (r *GormRentalRepo) Transition(ctx context.Context, id uuid.UUID, decide rentalpkg.DecideFunc) (*entity.Rental, error) {
	var out entity.Rental
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec entity.Rental
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return rentalpkg.ErrNotFound
			}
			return err
		}

		m, err := decide(&rec)
		if err != nil {
			return err
		}
		if len(m.Updates) > 0 {
			if err := tx.Model(&entity.Rental{}).Where("id = ?", rec.ID).Updates(m.Updates).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Customer").Preload("Quote").First(&out, "id = ?", rec.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
