package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	settingspkg "github.com/samedayramps/samedayramps-application/settings"
)

type SettingsHandler struct {
	service settingspkg.Service
}

func NewSettingsHandler(svc settingspkg.Service) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

func (h *SettingsHandler) GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		s, err := h.service.Get(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

type updateSettingsPayload struct {
	WarehouseAddress   string          `json:"warehouseAddress" binding:"required"`
	CostPerMile        decimal.Decimal `json:"costPerMile" binding:"required"`
	InstallFeePerFoot  decimal.Decimal `json:"installFeePerFoot" binding:"required"`
	RentalPricePerFoot decimal.Decimal `json:"rentalPricePerFoot" binding:"required"`
	DeliveryFlatFee    decimal.Decimal `json:"deliveryFlatFee" binding:"required"`
	InstallFlatFee     decimal.Decimal `json:"installFlatFee" binding:"required"`
}

func (h *SettingsHandler) UpdateSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p updateSettingsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		// Geocoding the new address can take a moment.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		s, err := h.service.Update(ctx, settingspkg.UpdateSettingsRequest{
			WarehouseAddress:   p.WarehouseAddress,
			CostPerMile:        p.CostPerMile,
			InstallFeePerFoot:  p.InstallFeePerFoot,
			RentalPricePerFoot: p.RentalPricePerFoot,
			DeliveryFlatFee:    p.DeliveryFlatFee,
			InstallFlatFee:     p.InstallFlatFee,
		})
		if err != nil {
			if errors.Is(err, settingspkg.ErrInvalidWarehouseAddress) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
