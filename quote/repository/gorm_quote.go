package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/samedayramps/samedayramps-application/entity"
	quotepkg "github.com/samedayramps/samedayramps-application/quote"
)

type GormQuoteRepo struct{ db *gorm.DB }

func NewGormQuoteRepo(db *gorm.DB) quotepkg.Repository { return &GormQuoteRepo{db: db} }

func (r *GormQuoteRepo) Store(ctx context.Context, q *entity.Quote) (*entity.Quote, error) {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *GormQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var q entity.Quote
	if err := r.db.WithContext(ctx).Preload("Customer").First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quotepkg.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *GormQuoteRepo) List(ctx context.Context) ([]entity.Quote, error) {
	var list []entity.Quote
	if err := r.db.WithContext(ctx).Preload("Customer").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateContact writes the customer contact fields and the quote
// address/notes fields as one transaction so an admin edit never half-applies.
func (r *GormQuoteRepo) UpdateContact(ctx context.Context, q *entity.Quote, c *entity.Customer) (*entity.Quote, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
			"first_name":      c.FirstName,
			"last_name":       c.LastName,
			"email":           c.Email,
			"phone":           c.Phone,
			"alternate_phone": c.AlternatePhone,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Quote{}).Where("id = ?", q.ID).Updates(map[string]interface{}{
			"installation_address": q.InstallationAddress,
			"admin_notes":          q.AdminNotes,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, q.ID)
}

// Transition locks the quote row FOR UPDATE, runs decide against the fresh
// state and applies the mutation inside the same transaction. Rentals are
// loaded (and locked) only when the quote is CONVERTED, which is the only
// state whose transitions touch them.
func (r *GormQuoteRepo) Transition(ctx context.Context, id uuid.UUID, decide quotepkg.DecideFunc) (*entity.Quote, error) {
	var out entity.Quote
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q entity.Quote
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&q, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return quotepkg.ErrNotFound
			}
			return err
		}

		var rentals []entity.Rental
		if q.Status == entity.QuoteConverted {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("quote_id = ?", q.ID).Find(&rentals).Error; err != nil {
				return err
			}
		}

		m, err := decide(&q, rentals)
		if err != nil {
			return err
		}

		if m.DeleteRentals {
			if err := tx.Where("quote_id = ?", q.ID).Delete(&entity.Rental{}).Error; err != nil {
				return err
			}
		}
		if len(m.Updates) > 0 {
			if err := tx.Model(&entity.Quote{}).Where("id = ?", q.ID).Updates(m.Updates).Error; err != nil {
				return err
			}
		}
		if m.CreateRental != nil {
			if err := tx.Create(m.CreateRental).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Customer").First(&out, "id = ?", q.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
