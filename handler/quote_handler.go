package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	quotepkg "github.com/samedayramps/samedayramps-application/quote"
)

type QuoteHandler struct {
	service quotepkg.Service
}

func NewQuoteHandler(svc quotepkg.Service) *QuoteHandler {
	return &QuoteHandler{service: svc}
}

type createQuotePayload struct {
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone" binding:"required"`
	InstallationAddress string  `json:"installation_address" binding:"required"`
	CustomerNotes       *string `json:"customer_notes"`
}

func (h *QuoteHandler) CreateQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createQuotePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		q, err := h.service.CreateQuote(ctx, quotepkg.CreateQuoteRequest{
			FirstName:           p.FirstName,
			LastName:            p.LastName,
			Email:               p.Email,
			Phone:               p.Phone,
			InstallationAddress: p.InstallationAddress,
			CustomerNotes:       p.CustomerNotes,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quote", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, q)
	}
}

func (h *QuoteHandler) ListQuotes() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		quotes, err := h.service.ListQuotes(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, quotes)
	}
}

func (h *QuoteHandler) GetQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		q, err := h.service.GetQuote(ctx, id)
		if err != nil {
			if errors.Is(err, quotepkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

type updateQuotePayload struct {
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone" binding:"required"`
	AlternatePhone      *string `json:"alternate_phone"`
	InstallationAddress string  `json:"installation_address" binding:"required"`
	AdminNotes          *string `json:"admin_notes"`
}

func (h *QuoteHandler) UpdateQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}
		var p updateQuotePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		q, err := h.service.UpdateQuote(ctx, id, quotepkg.UpdateQuoteRequest{
			FirstName:           p.FirstName,
			LastName:            p.LastName,
			Email:               p.Email,
			Phone:               p.Phone,
			AlternatePhone:      p.AlternatePhone,
			InstallationAddress: p.InstallationAddress,
			AdminNotes:          p.AdminNotes,
		})
		if err != nil {
			if errors.Is(err, quotepkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

type quoteActionPayload struct {
	Action             string           `json:"action" binding:"required"`
	DeliveryFee        *decimal.Decimal `json:"delivery_fee"`
	InstallFee         *decimal.Decimal `json:"install_fee"`
	RampLength         *decimal.Decimal `json:"ramp_length"`
	UpfrontCost        *decimal.Decimal `json:"upfront_cost"`
	MonthlyRate        *decimal.Decimal `json:"monthly_rate"`
	TotalEstimatedCost *decimal.Decimal `json:"total_estimated_cost"`
}

// ApplyAction drives the quote workflow. providePrice additionally carries
// the six priced fields produced by the pricing calculator.
func (h *QuoteHandler) ApplyAction() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}
		var p quoteActionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		var price *quotepkg.PriceInput
		if quotepkg.Action(p.Action) == quotepkg.ActionProvidePrice {
			if p.DeliveryFee == nil || p.InstallFee == nil || p.RampLength == nil ||
				p.UpfrontCost == nil || p.MonthlyRate == nil || p.TotalEstimatedCost == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": quotepkg.ErrPriceRequired.Error()})
				return
			}
			price = &quotepkg.PriceInput{
				DeliveryFee:        *p.DeliveryFee,
				InstallFee:         *p.InstallFee,
				RampLength:         *p.RampLength,
				UpfrontCost:        *p.UpfrontCost,
				MonthlyRate:        *p.MonthlyRate,
				TotalEstimatedCost: *p.TotalEstimatedCost,
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		q, err := h.service.ApplyAction(ctx, id, quotepkg.Action(p.Action), price)
		if err != nil {
			switch {
			case errors.Is(err, quotepkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, quotepkg.ErrInvalidAction), errors.Is(err, quotepkg.ErrPriceRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, quotepkg.ErrInvalidState), errors.Is(err, quotepkg.ErrRevertBlocked):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, q)
	}
}
