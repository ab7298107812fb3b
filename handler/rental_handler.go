package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/esign"
	rentalpkg "github.com/samedayramps/samedayramps-application/rental"
)

type RentalHandler struct {
	service rentalpkg.Service
}

func NewRentalHandler(svc rentalpkg.Service) *RentalHandler {
	return &RentalHandler{service: svc}
}

func (h *RentalHandler) ListRentals() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		rentals, err := h.service.ListRentals(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rentals)
	}
}

func (h *RentalHandler) GetRental() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rental id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		r, err := h.service.GetRental(ctx, id)
		if err != nil {
			if errors.Is(err, rentalpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

type rentalActionPayload struct {
	Action string `json:"action" binding:"required"`
}

// ApplyAction drives the rental workflow. sendAgreement reaches out to the
// e-signature provider; its config and provider failures surface distinctly.
func (h *RentalHandler) ApplyAction() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rental id"})
			return
		}
		var p rentalActionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		// Provider calls can be slow; allow more than the usual budget.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		r, err := h.service.ApplyAction(ctx, id, rentalpkg.Action(p.Action))
		if err != nil {
			switch {
			case errors.Is(err, rentalpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, rentalpkg.ErrInvalidAction):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, rentalpkg.ErrInvalidState):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, esign.ErrNotConfigured):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			case errors.Is(err, esign.ErrRejected), errors.Is(err, esign.ErrMissingContractID):
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, r)
	}
}
