package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samedayramps/samedayramps-application/entity"
	"github.com/samedayramps/samedayramps-application/esign"
	rentalpkg "github.com/samedayramps/samedayramps-application/rental"
)

// fakeRentalRepo keeps rentals in memory and mirrors the Transition contract:
// a decide error aborts with no writes.
type fakeRentalRepo struct {
	rentals map[uuid.UUID]*entity.Rental
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: map[uuid.UUID]*entity.Rental{}}
}

func (f *fakeRentalRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, rentalpkg.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRentalRepo) GetByContractID(_ context.Context, contractID string) (*entity.Rental, error) {
	for _, r := range f.rentals {
		if r.ESignaturesContractID != nil && *r.ESignaturesContractID == contractID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRentalRepo) List(_ context.Context) ([]entity.Rental, error) {
	out := make([]entity.Rental, 0, len(f.rentals))
	for _, r := range f.rentals {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRentalRepo) Transition(_ context.Context, id uuid.UUID, decide rentalpkg.DecideFunc) (*entity.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, rentalpkg.ErrNotFound
	}
	m, err := decide(r)
	if err != nil {
		return nil, err
	}
	for k, v := range m.Updates {
		switch k {
		case "status":
			r.Status = v.(entity.RentalStatus)
		case "esignatures_contract_id":
			s := v.(string)
			r.ESignaturesContractID = &s
		case "signed_agreement_url":
			s := v.(string)
			r.SignedAgreementURL = &s
		case "installation_date":
			t := v.(time.Time)
			r.InstallationDate = &t
		case "removal_date":
			t := v.(time.Time)
			r.RemovalDate = &t
		}
	}
	cp := *r
	return &cp, nil
}

type fakeESign struct {
	contract *esign.Contract
	err      error
	calls    int
	lastReq  esign.CreateContractRequest
}

func (f *fakeESign) CreateContract(_ context.Context, req esign.CreateContractRequest) (*esign.Contract, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.contract, nil
}

type fakeNotifier struct {
	signed int
	err    error
}

func (f *fakeNotifier) QuoteRequested(_ context.Context, _ *entity.Quote) error { return f.err }
func (f *fakeNotifier) QuotePriced(_ context.Context, _ *entity.Quote) error    { return f.err }
func (f *fakeNotifier) AgreementSigned(_ context.Context, _ *entity.Rental) error {
	f.signed++
	return f.err
}

func seedRental(repo *fakeRentalRepo, status entity.RentalStatus) *entity.Rental {
	r := &entity.Rental{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Customer: entity.Customer{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
		},
		Status:      status,
		StartDate:   time.Now(),
		UpfrontCost: decimal.RequireFromString("500.00"),
		MonthlyRate: decimal.RequireFromString("400.00"),
		TotalPaid:   decimal.Zero,
	}
	repo.rentals[r.ID] = r
	return r
}

func TestSendAgreementCreatesContractThenTransitions(t *testing.T) {
	repo := newFakeRentalRepo()
	provider := &fakeESign{contract: &esign.Contract{ID: "contract-123"}}
	svc := NewRentalService(repo, provider, &fakeNotifier{})
	r := seedRental(repo, entity.RentalPending)

	updated, err := svc.ApplyAction(context.Background(), r.ID, rentalpkg.ActionSendAgreement)
	require.NoError(t, err)
	require.Equal(t, entity.RentalAgreementSent, updated.Status)
	require.NotNil(t, updated.ESignaturesContractID)
	require.Equal(t, "contract-123", *updated.ESignaturesContractID)

	require.Equal(t, 1, provider.calls)
	require.Equal(t, "Jane Doe", provider.lastReq.SignerName)
	require.Equal(t, "jane@example.com", provider.lastReq.SignerEmail)
	require.Equal(t, r.ID.String(), provider.lastReq.Metadata)
	require.Len(t, provider.lastReq.Placeholders, 4)
}

func TestSendAgreementProviderFailureLeavesRentalPending(t *testing.T) {
	repo := newFakeRentalRepo()
	provider := &fakeESign{err: esign.ErrRejected}
	svc := NewRentalService(repo, provider, &fakeNotifier{})
	r := seedRental(repo, entity.RentalPending)

	_, err := svc.ApplyAction(context.Background(), r.ID, rentalpkg.ActionSendAgreement)
	require.ErrorIs(t, err, esign.ErrRejected)
	require.Equal(t, entity.RentalPending, repo.rentals[r.ID].Status)
	require.Nil(t, repo.rentals[r.ID].ESignaturesContractID)
}

func TestSendAgreementWrongState(t *testing.T) {
	repo := newFakeRentalRepo()
	provider := &fakeESign{contract: &esign.Contract{ID: "contract-123"}}
	svc := NewRentalService(repo, provider, &fakeNotifier{})
	r := seedRental(repo, entity.RentalAgreementSent)

	_, err := svc.ApplyAction(context.Background(), r.ID, rentalpkg.ActionSendAgreement)
	require.ErrorIs(t, err, rentalpkg.ErrInvalidState)
	require.Equal(t, 0, provider.calls)
}

func TestForwardActionsSetDates(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalService(repo, &fakeESign{}, &fakeNotifier{})
	r := seedRental(repo, entity.RentalAgreementSigned)
	ctx := context.Background()

	r1, err := svc.ApplyAction(ctx, r.ID, rentalpkg.ActionScheduleInstallation)
	require.NoError(t, err)
	require.Equal(t, entity.RentalInstallationScheduled, r1.Status)
	require.Nil(t, r1.InstallationDate)

	r2, err := svc.ApplyAction(ctx, r.ID, rentalpkg.ActionMarkInstalled)
	require.NoError(t, err)
	require.Equal(t, entity.RentalActive, r2.Status)
	require.NotNil(t, r2.InstallationDate)

	r3, err := svc.ApplyAction(ctx, r.ID, rentalpkg.ActionScheduleRemoval)
	require.NoError(t, err)
	require.Equal(t, entity.RentalRemovalScheduled, r3.Status)

	r4, err := svc.ApplyAction(ctx, r.ID, rentalpkg.ActionCompleteRemoval)
	require.NoError(t, err)
	require.Equal(t, entity.RentalCompleted, r4.Status)
	require.NotNil(t, r4.RemovalDate)
}

func TestApplyActionRejectsUnknownAction(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalService(repo, &fakeESign{}, &fakeNotifier{})
	r := seedRental(repo, entity.RentalPending)

	_, err := svc.ApplyAction(context.Background(), r.ID, rentalpkg.Action("ship"))
	require.ErrorIs(t, err, rentalpkg.ErrInvalidAction)
}

func TestRevertStageKeepsDatesAndContractID(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalService(repo, &fakeESign{}, &fakeNotifier{})
	r := seedRental(repo, entity.RentalActive)
	contractID := "contract-123"
	installed := time.Now()
	repo.rentals[r.ID].ESignaturesContractID = &contractID
	repo.rentals[r.ID].InstallationDate = &installed

	reverted, err := svc.ApplyAction(context.Background(), r.ID, rentalpkg.ActionRevertStage)
	require.NoError(t, err)
	require.Equal(t, entity.RentalInstallationScheduled, reverted.Status)
	require.NotNil(t, reverted.ESignaturesContractID)
	require.NotNil(t, reverted.InstallationDate)
}

func TestRevertFromPendingRejected(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalService(repo, &fakeESign{}, &fakeNotifier{})
	r := seedRental(repo, entity.RentalPending)

	_, err := svc.ApplyAction(context.Background(), r.ID, rentalpkg.ActionRevertStage)
	require.ErrorIs(t, err, rentalpkg.ErrInvalidState)
}

func TestCompleteSignatureAdvancesAndNotifiesOnce(t *testing.T) {
	repo := newFakeRentalRepo()
	notifier := &fakeNotifier{}
	svc := NewRentalService(repo, &fakeESign{}, notifier)
	r := seedRental(repo, entity.RentalAgreementSent)
	contractID := "contract-123"
	repo.rentals[r.ID].ESignaturesContractID = &contractID

	updated, applied, err := svc.CompleteSignature(context.Background(), contractID, "https://cdn.example.com/signed.pdf")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, entity.RentalAgreementSigned, updated.Status)
	require.NotNil(t, updated.SignedAgreementURL)
	require.Equal(t, "https://cdn.example.com/signed.pdf", *updated.SignedAgreementURL)
	require.Equal(t, 1, notifier.signed)

	// Duplicate delivery: no second write, no second notification.
	again, applied, err := svc.CompleteSignature(context.Background(), contractID, "https://cdn.example.com/signed.pdf")
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, entity.RentalAgreementSigned, again.Status)
	require.Equal(t, 1, notifier.signed)
}

func TestCompleteSignatureWithoutPDFURL(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalService(repo, &fakeESign{}, &fakeNotifier{})
	r := seedRental(repo, entity.RentalAgreementSent)
	contractID := "contract-456"
	repo.rentals[r.ID].ESignaturesContractID = &contractID

	updated, applied, err := svc.CompleteSignature(context.Background(), contractID, "")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, entity.RentalAgreementSigned, updated.Status)
	require.Nil(t, updated.SignedAgreementURL)
}

func TestCompleteSignatureUnknownContract(t *testing.T) {
	repo := newFakeRentalRepo()
	svc := NewRentalService(repo, &fakeESign{}, &fakeNotifier{})

	_, _, err := svc.CompleteSignature(context.Background(), "no-such-contract", "")
	require.ErrorIs(t, err, rentalpkg.ErrNotFound)
}

func TestCompleteSignatureNotificationFailureDoesNotFail(t *testing.T) {
	repo := newFakeRentalRepo()
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewRentalService(repo, &fakeESign{}, notifier)
	r := seedRental(repo, entity.RentalAgreementSent)
	contractID := "contract-789"
	repo.rentals[r.ID].ESignaturesContractID = &contractID

	updated, applied, err := svc.CompleteSignature(context.Background(), contractID, "")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, entity.RentalAgreementSigned, updated.Status)
}
