package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samedayramps/samedayramps-application/entity"
	"github.com/samedayramps/samedayramps-application/esign"
	"github.com/samedayramps/samedayramps-application/notify"
	rentalpkg "github.com/samedayramps/samedayramps-application/rental"
)

// forwardStep is one row of the rental workflow table.
type forwardStep struct {
	from entity.RentalStatus
	to   entity.RentalStatus
}

// forward maps each action to its single legal predecessor and successor.
// sendAgreement is absent: its provider side effect needs special handling.
var forward = map[rentalpkg.Action]forwardStep{
	rentalpkg.ActionMarkAgreementSigned:  {entity.RentalAgreementSent, entity.RentalAgreementSigned},
	rentalpkg.ActionScheduleInstallation: {entity.RentalAgreementSigned, entity.RentalInstallationScheduled},
	rentalpkg.ActionMarkInstalled:        {entity.RentalInstallationScheduled, entity.RentalActive},
	rentalpkg.ActionScheduleRemoval:      {entity.RentalActive, entity.RentalRemovalScheduled},
	rentalpkg.ActionCompleteRemoval:      {entity.RentalRemovalScheduled, entity.RentalCompleted},
}

// revert is the inverse chain, one step back. Only the status moves;
// installation/removal dates and the contract id are intentionally kept
// since the events they record did happen.
var revert = map[entity.RentalStatus]entity.RentalStatus{
	entity.RentalAgreementSent:         entity.RentalPending,
	entity.RentalAgreementSigned:       entity.RentalAgreementSent,
	entity.RentalInstallationScheduled: entity.RentalAgreementSigned,
	entity.RentalActive:                entity.RentalInstallationScheduled,
	entity.RentalRemovalScheduled:      entity.RentalActive,
	entity.RentalCompleted:             entity.RentalRemovalScheduled,
}

// rentalService implements rental.Service.
type rentalService struct {
	repo     rentalpkg.Repository
	esign    esign.Service
	notifier notify.Service
}

// NewRentalService constructs a rental.Service.
func NewRentalService(repo rentalpkg.Repository, esignSvc esign.Service, notifier notify.Service) rentalpkg.Service {
	return &rentalService{repo: repo, esign: esignSvc, notifier: notifier}
}

func (s *rentalService) GetRental(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]entity.Rental, error) {
	return s.repo.List(ctx)
}

func stateError(action rentalpkg.Action, status entity.RentalStatus) error {
	return fmt.Errorf("%w: %s not allowed from %s", rentalpkg.ErrInvalidState, action, status)
}

func (s *rentalService) ApplyAction(ctx context.Context, id uuid.UUID, action rentalpkg.Action) (*entity.Rental, error) {
	if action == rentalpkg.ActionSendAgreement {
		return s.sendAgreement(ctx, id)
	}
	if action == rentalpkg.ActionRevertStage {
		return s.repo.Transition(ctx, id, func(r *entity.Rental) (*rentalpkg.Mutation, error) {
			prev, ok := revert[r.Status]
			if !ok {
				return nil, fmt.Errorf("%w: cannot revert from %s", rentalpkg.ErrInvalidState, r.Status)
			}
			return &rentalpkg.Mutation{Updates: map[string]interface{}{"status": prev}}, nil
		})
	}

	step, ok := forward[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", rentalpkg.ErrInvalidAction, action)
	}
	return s.repo.Transition(ctx, id, func(r *entity.Rental) (*rentalpkg.Mutation, error) {
		if r.Status != step.from {
			return nil, stateError(action, r.Status)
		}
		updates := map[string]interface{}{"status": step.to}
		switch action {
		case rentalpkg.ActionMarkInstalled:
			updates["installation_date"] = time.Now()
		case rentalpkg.ActionCompleteRemoval:
			updates["removal_date"] = time.Now()
		}
		return &rentalpkg.Mutation{Updates: updates}, nil
	})
}

// sendAgreement creates the e-signature contract first and only then flips
// the status. A provider failure, or a response without a contract id,
// leaves the rental PENDING and any previously stored contract id untouched.
func (s *rentalService) sendAgreement(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != entity.RentalPending {
		return nil, stateError(rentalpkg.ActionSendAgreement, r.Status)
	}

	address := "N/A"
	if r.Quote != nil {
		address = r.Quote.InstallationAddress
	}
	contract, err := s.esign.CreateContract(ctx, esign.CreateContractRequest{
		Title:       fmt.Sprintf("Rental Agreement for %s - %s", r.Customer.FullName(), address),
		Metadata:    r.ID.String(),
		SignerName:  r.Customer.FullName(),
		SignerEmail: r.Customer.Email,
		Placeholders: []esign.Placeholder{
			{APIKey: "customer_name", Value: r.Customer.FullName()},
			{APIKey: "installation_address", Value: address},
			{APIKey: "upfront_cost", Value: "$" + r.UpfrontCost.StringFixed(2)},
			{APIKey: "monthly_rate", Value: "$" + r.MonthlyRate.StringFixed(2)},
		},
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Transition(ctx, id, func(cur *entity.Rental) (*rentalpkg.Mutation, error) {
		if cur.Status != entity.RentalPending {
			return nil, stateError(rentalpkg.ActionSendAgreement, cur.Status)
		}
		return &rentalpkg.Mutation{Updates: map[string]interface{}{
			"status":                  entity.RentalAgreementSent,
			"esignatures_contract_id": contract.ID,
		}}, nil
	})
}

// CompleteSignature advances the rental on the provider's contract-signed
// event. Duplicate deliveries for an already signed rental are no-ops; the
// admin notification fires at most once.
func (s *rentalService) CompleteSignature(ctx context.Context, contractID, signedPDFURL string) (*entity.Rental, bool, error) {
	r, err := s.repo.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, false, err
	}
	if r == nil {
		return nil, false, fmt.Errorf("%w: no rental for contract %s", rentalpkg.ErrNotFound, contractID)
	}
	if r.Status == entity.RentalAgreementSigned {
		return r, false, nil
	}

	applied := false
	updated, err := s.repo.Transition(ctx, r.ID, func(cur *entity.Rental) (*rentalpkg.Mutation, error) {
		if cur.Status == entity.RentalAgreementSigned {
			// Lost the race against a duplicate delivery; nothing to do.
			return &rentalpkg.Mutation{}, nil
		}
		updates := map[string]interface{}{"status": entity.RentalAgreementSigned}
		if signedPDFURL != "" {
			updates["signed_agreement_url"] = signedPDFURL
		}
		applied = true
		return &rentalpkg.Mutation{Updates: updates}, nil
	})
	if err != nil {
		return nil, false, err
	}

	if applied {
		if err := s.notifier.AgreementSigned(ctx, updated); err != nil {
			logrus.WithError(err).WithField("rental_id", updated.ID).Warn("failed to send agreement signed notification")
		}
	}
	return updated, applied, nil
}
