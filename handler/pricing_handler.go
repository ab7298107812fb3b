package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	pricingpkg "github.com/samedayramps/samedayramps-application/pricing"
)

type PricingHandler struct {
	service pricingpkg.Service
}

func NewPricingHandler(svc pricingpkg.Service) *PricingHandler {
	return &PricingHandler{service: svc}
}

type calculatePayload struct {
	CustomerAddress string          `json:"customerAddress" binding:"required"`
	RampLength      decimal.Decimal `json:"rampLength" binding:"required"`
}

// Calculate prices a prospective rental from the customer address and the
// requested ramp length.
func (h *PricingHandler) Calculate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p calculatePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		if !p.RampLength.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rampLength must be positive"})
			return
		}
		// Depends on the distance provider; allow more than the usual budget.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		b, err := h.service.QuotePrice(ctx, p.CustomerAddress, p.RampLength)
		if err != nil {
			switch {
			case errors.Is(err, pricingpkg.ErrDistanceUnavailable):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, pricingpkg.ErrWarehouseNotConfigured):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
