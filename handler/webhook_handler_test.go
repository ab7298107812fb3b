package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/samedayramps/samedayramps-application/entity"
	rentalpkg "github.com/samedayramps/samedayramps-application/rental"
)

type stubRentalService struct {
	rental  *entity.Rental
	applied bool
	err     error
	calls   int
}

func (s *stubRentalService) GetRental(_ context.Context, _ uuid.UUID) (*entity.Rental, error) {
	return s.rental, s.err
}

func (s *stubRentalService) ListRentals(_ context.Context) ([]entity.Rental, error) {
	return nil, nil
}

func (s *stubRentalService) ApplyAction(_ context.Context, _ uuid.UUID, _ rentalpkg.Action) (*entity.Rental, error) {
	return s.rental, s.err
}

func (s *stubRentalService) CompleteSignature(_ context.Context, _, _ string) (*entity.Rental, bool, error) {
	s.calls++
	return s.rental, s.applied, s.err
}

func postWebhook(t *testing.T, svc rentalpkg.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhooks/esignatures", NewWebhookHandler(svc).ESignatures())

	req := httptest.NewRequest(http.MethodPost, "/webhooks/esignatures", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookContractSigned(t *testing.T) {
	svc := &stubRentalService{
		rental:  &entity.Rental{ID: uuid.New(), Status: entity.RentalAgreementSigned},
		applied: true,
	}
	w := postWebhook(t, svc, `{"event":"contract-signed","data":{"contract":{"id":"contract-123","contract_pdf_url":"https://cdn.example.com/signed.pdf"}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, svc.calls)
	require.Contains(t, w.Body.String(), `"applied":true`)
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	svc := &stubRentalService{}
	w := postWebhook(t, svc, `{"event":"contract-viewed","data":{"contract":{"id":"contract-123"}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, svc.calls)
}

func TestWebhookMissingContractID(t *testing.T) {
	svc := &stubRentalService{}
	w := postWebhook(t, svc, `{"event":"contract-signed","data":{"contract":{"id":""}}}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 0, svc.calls)
}

func TestWebhookUnknownContractAcknowledged(t *testing.T) {
	svc := &stubRentalService{err: rentalpkg.ErrNotFound}
	w := postWebhook(t, svc, `{"event":"contract-signed","data":{"contract":{"id":"no-such-contract"}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, svc.calls)
}

func TestWebhookProcessingFailure(t *testing.T) {
	svc := &stubRentalService{err: errors.New("db down")}
	w := postWebhook(t, svc, `{"event":"contract-signed","data":{"contract":{"id":"contract-123"}}}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
