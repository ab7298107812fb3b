package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/samedayramps/samedayramps-application/esign"
	rentalpkg "github.com/samedayramps/samedayramps-application/rental"
)

type WebhookHandler struct {
	rentals rentalpkg.Service
}

func NewWebhookHandler(rentals rentalpkg.Service) *WebhookHandler {
	return &WebhookHandler{rentals: rentals}
}

// ESignatures receives provider callbacks. Events other than contract-signed
// are acknowledged without action. An unknown contract id is acknowledged too
// so the provider stops retrying; only processing failures return 500 for a
// redelivery.
func (h *WebhookHandler) ESignatures() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p esign.WebhookPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload", "detail": err.Error()})
			return
		}
		if p.Event != esign.EventContractSigned {
			logrus.WithField("event", p.Event).Info("ignoring e-signature webhook event")
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		if p.Data.Contract == nil || p.Data.Contract.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing contract id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		r, applied, err := h.rentals.CompleteSignature(ctx, p.Data.Contract.ID, p.Data.Contract.ContractPDFURL)
		if err != nil {
			if errors.Is(err, rentalpkg.ErrNotFound) {
				logrus.WithField("contract_id", p.Data.Contract.ID).Warn("signed contract matches no rental")
				c.JSON(http.StatusOK, gin.H{"received": true})
				return
			}
			logrus.WithError(err).WithField("contract_id", p.Data.Contract.ID).Error("failed to process signed contract")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process webhook"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true, "applied": applied, "rentalId": r.ID})
	}
}
