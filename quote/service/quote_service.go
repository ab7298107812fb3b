package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	customerpkg "github.com/samedayramps/samedayramps-application/customer"
	"github.com/samedayramps/samedayramps-application/entity"
	"github.com/samedayramps/samedayramps-application/notify"
	quotepkg "github.com/samedayramps/samedayramps-application/quote"
)

// Config tunes workflow policy.
type Config struct {
	// AllowPaidRevert permits revertStage on a CONVERTED quote even when the
	// rental about to be deleted has payments recorded. Off by default; the
	// delete is irreversible and there is no compensating bookkeeping.
	AllowPaidRevert bool
}

// quoteService implements quote.Service.
type quoteService struct {
	repo      quotepkg.Repository
	customers customerpkg.Repository
	notifier  notify.Service
	cfg       Config
}

// NewQuoteService constructs a quote.Service.
func NewQuoteService(repo quotepkg.Repository, customers customerpkg.Repository, notifier notify.Service, cfg Config) quotepkg.Service {
	return &quoteService{repo: repo, customers: customers, notifier: notifier, cfg: cfg}
}

// CreateQuote upserts the customer by email, stores a PENDING quote and
// fires the internal new-quote notification after the writes commit.
func (s *quoteService) CreateQuote(ctx context.Context, req quotepkg.CreateQuoteRequest) (*entity.Quote, error) {
	c, err := s.customers.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = s.customers.Store(ctx, &entity.Customer{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		})
		if err != nil {
			return nil, err
		}
	}

	q, err := s.repo.Store(ctx, &entity.Quote{
		CustomerID:          c.ID,
		Status:              entity.QuotePending,
		InstallationAddress: req.InstallationAddress,
		CustomerNotes:       req.CustomerNotes,
	})
	if err != nil {
		return nil, err
	}
	q.Customer = *c

	if err := s.notifier.QuoteRequested(ctx, q); err != nil {
		logrus.WithError(err).WithField("quote_id", q.ID).Warn("failed to send new quote notification")
	}
	return q, nil
}

func (s *quoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *quoteService) ListQuotes(ctx context.Context) ([]entity.Quote, error) {
	return s.repo.List(ctx)
}

// UpdateQuote edits contact and address fields. Workflow fields are only
// reachable through ApplyAction.
func (s *quoteService) UpdateQuote(ctx context.Context, id uuid.UUID, req quotepkg.UpdateQuoteRequest) (*entity.Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c := q.Customer
	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Email = req.Email
	c.Phone = req.Phone
	c.AlternatePhone = req.AlternatePhone

	q.InstallationAddress = req.InstallationAddress
	q.AdminNotes = req.AdminNotes

	return s.repo.UpdateContact(ctx, q, &c)
}

// ApplyAction runs one workflow action under the repository's transactional
// row lock, then fires any post-commit notification the transition calls for.
func (s *quoteService) ApplyAction(ctx context.Context, id uuid.UUID, action quotepkg.Action, price *quotepkg.PriceInput) (*entity.Quote, error) {
	switch action {
	case quotepkg.ActionMarkInfoGathered, quotepkg.ActionProvidePrice, quotepkg.ActionAcceptQuote,
		quotepkg.ActionConvertToRental, quotepkg.ActionRevertStage:
	default:
		return nil, fmt.Errorf("%w: %s", quotepkg.ErrInvalidAction, action)
	}
	if action == quotepkg.ActionProvidePrice && price == nil {
		return nil, quotepkg.ErrPriceRequired
	}

	updated, err := s.repo.Transition(ctx, id, func(q *entity.Quote, rentals []entity.Rental) (*quotepkg.Mutation, error) {
		return s.decide(q, rentals, action, price)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit side effect: the customer gets their quote email exactly
	// when the status first becomes QUOTED. Failure never unwinds the
	// transition.
	if action == quotepkg.ActionProvidePrice {
		if err := s.notifier.QuotePriced(ctx, updated); err != nil {
			logrus.WithError(err).WithField("quote_id", updated.ID).Warn("failed to send quote email")
		}
	}
	return updated, nil
}

func stateError(action quotepkg.Action, status entity.QuoteStatus) error {
	return fmt.Errorf("%w: %s not allowed from %s", quotepkg.ErrInvalidState, action, status)
}

// decide maps (current status, action) to the mutation for that transition.
// It runs inside the repository transaction with the quote row locked.
func (s *quoteService) decide(q *entity.Quote, rentals []entity.Rental, action quotepkg.Action, price *quotepkg.PriceInput) (*quotepkg.Mutation, error) {
	now := time.Now()

	switch action {
	case quotepkg.ActionMarkInfoGathered:
		if q.Status != entity.QuotePending {
			return nil, stateError(action, q.Status)
		}
		return &quotepkg.Mutation{Updates: map[string]interface{}{
			"status":               entity.QuoteInfoGathering,
			"information_gathered": true,
		}}, nil

	case quotepkg.ActionProvidePrice:
		if q.Status != entity.QuoteInfoGathering {
			return nil, stateError(action, q.Status)
		}
		return &quotepkg.Mutation{Updates: map[string]interface{}{
			"status":               entity.QuoteQuoted,
			"price_provided":       true,
			"price_provided_date":  now,
			"delivery_fee":         price.DeliveryFee,
			"install_fee":          price.InstallFee,
			"ramp_length":          price.RampLength,
			"upfront_cost":         price.UpfrontCost,
			"monthly_rate":         price.MonthlyRate,
			"total_estimated_cost": price.TotalEstimatedCost,
		}}, nil

	case quotepkg.ActionAcceptQuote:
		if q.Status != entity.QuoteQuoted {
			return nil, stateError(action, q.Status)
		}
		return &quotepkg.Mutation{Updates: map[string]interface{}{
			"status":            entity.QuoteAccepted,
			"customer_accepted": true,
			"accepted_date":     now,
		}}, nil

	case quotepkg.ActionConvertToRental:
		if q.Status != entity.QuoteAccepted {
			return nil, stateError(action, q.Status)
		}
		upfront := decimal.Zero
		if q.UpfrontCost != nil {
			upfront = *q.UpfrontCost
		}
		monthly := decimal.Zero
		if q.MonthlyRate != nil {
			monthly = *q.MonthlyRate
		}
		quoteID := q.ID
		return &quotepkg.Mutation{
			Updates: map[string]interface{}{"status": entity.QuoteConverted},
			CreateRental: &entity.Rental{
				CustomerID:  q.CustomerID,
				QuoteID:     &quoteID,
				Status:      entity.RentalPending,
				StartDate:   now,
				UpfrontCost: upfront,
				MonthlyRate: monthly,
				TotalPaid:   decimal.Zero,
			},
		}, nil

	case quotepkg.ActionRevertStage:
		return s.decideRevert(q, rentals)
	}
	return nil, fmt.Errorf("%w: %s", quotepkg.ErrInvalidAction, action)
}

// decideRevert moves one step back along the chain, clearing whatever the
// corresponding forward action set.
func (s *quoteService) decideRevert(q *entity.Quote, rentals []entity.Rental) (*quotepkg.Mutation, error) {
	switch q.Status {
	case entity.QuoteInfoGathering:
		return &quotepkg.Mutation{Updates: map[string]interface{}{
			"status":               entity.QuotePending,
			"information_gathered": false,
		}}, nil

	case entity.QuoteQuoted:
		return &quotepkg.Mutation{Updates: map[string]interface{}{
			"status":               entity.QuoteInfoGathering,
			"price_provided":       false,
			"price_provided_date":  nil,
			"delivery_fee":         nil,
			"install_fee":          nil,
			"ramp_length":          nil,
			"upfront_cost":         nil,
			"monthly_rate":         nil,
			"total_estimated_cost": nil,
		}}, nil

	case entity.QuoteAccepted:
		return &quotepkg.Mutation{Updates: map[string]interface{}{
			"status":            entity.QuoteQuoted,
			"customer_accepted": false,
			"accepted_date":     nil,
		}}, nil

	case entity.QuoteConverted:
		// Destructive compensation: the rental created at conversion is
		// deleted. Blocked when money has changed hands unless explicitly
		// configured otherwise.
		if !s.cfg.AllowPaidRevert {
			for i := range rentals {
				if rentals[i].TotalPaid.IsPositive() {
					return nil, fmt.Errorf("%w: rental %s has $%s paid",
						quotepkg.ErrRevertBlocked, rentals[i].ID, rentals[i].TotalPaid.StringFixed(2))
				}
			}
		}
		return &quotepkg.Mutation{
			Updates:       map[string]interface{}{"status": entity.QuoteAccepted},
			DeleteRentals: true,
		}, nil
	}
	return nil, fmt.Errorf("%w: cannot revert from %s", quotepkg.ErrInvalidState, q.Status)
}
