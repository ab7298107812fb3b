package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerpkg "github.com/samedayramps/samedayramps-application/customer"
	"github.com/samedayramps/samedayramps-application/entity"
)

type CustomerHandler struct {
	service customerpkg.Service
}

func NewCustomerHandler(svc customerpkg.Service) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type createCustomerPayload struct {
	FirstName        string                   `json:"firstName" binding:"required"`
	LastName         string                   `json:"lastName" binding:"required"`
	Email            string                   `json:"email" binding:"required,email"`
	Phone            string                   `json:"phone" binding:"required"`
	AlternatePhone   *string                  `json:"alternatePhone"`
	Address          *string                  `json:"address"`
	City             *string                  `json:"city"`
	State            *string                  `json:"state"`
	ZipCode          *string                  `json:"zipCode"`
	CustomerType     *entity.CustomerType     `json:"customerType"`
	PreferredContact *entity.PreferredContact `json:"preferredContact"`
	Priority         *entity.CustomerPriority `json:"priority"`
	ReferralSource   *string                  `json:"referralSource"`
	Tags             *string                  `json:"tags"`
	Notes            *string                  `json:"notes"`
}

func (p createCustomerPayload) toRequest() customerpkg.CreateCustomerRequest {
	return customerpkg.CreateCustomerRequest{
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		Phone:            p.Phone,
		AlternatePhone:   p.AlternatePhone,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		ZipCode:          p.ZipCode,
		CustomerType:     p.CustomerType,
		PreferredContact: p.PreferredContact,
		Priority:         p.Priority,
		ReferralSource:   p.ReferralSource,
		Tags:             p.Tags,
		Notes:            p.Notes,
	}
}

func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.CreateCustomer(ctx, p.toRequest())
		if err != nil {
			if errors.Is(err, customerpkg.ErrEmailExists) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, cust)
	}
}

func (h *CustomerHandler) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.GetCustomer(ctx, id)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

type updateCustomerPayload struct {
	createCustomerPayload
	LifecycleStage *entity.CustomerLifecycleStage `json:"lifecycleStage"`
	Status         *entity.CustomerStatus         `json:"status"`
}

func (h *CustomerHandler) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p updateCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := customerpkg.UpdateCustomerRequest{
			CreateCustomerRequest: p.toRequest(),
			LifecycleStage:        p.LifecycleStage,
			Status:                p.Status,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cust, err := h.service.UpdateCustomer(ctx, id, req)
		if err != nil {
			switch {
			case errors.Is(err, customerpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, customerpkg.ErrEmailExists):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

func (h *CustomerHandler) SearchCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := customerpkg.SearchFilter{
			Search:    c.Query("search"),
			Page:      queryInt(c, "page", 1),
			Limit:     queryInt(c, "limit", 20),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
		}
		if v := c.Query("status"); v != "" {
			s := entity.CustomerStatus(v)
			f.Status = &s
		}
		if v := c.Query("lifecycleStage"); v != "" {
			s := entity.CustomerLifecycleStage(v)
			f.LifecycleStage = &s
		}
		if v := c.Query("priority"); v != "" {
			p := entity.CustomerPriority(v)
			f.Priority = &p
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customers, total, err := h.service.SearchCustomers(ctx, f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"customers": customers,
			"total":     total,
			"page":      f.Page,
			"limit":     f.Limit,
		})
	}
}

type logCommunicationPayload struct {
	Type          entity.CommunicationType      `json:"type" binding:"required"`
	Direction     entity.CommunicationDirection `json:"direction" binding:"required"`
	Subject       *string                       `json:"subject"`
	Content       string                        `json:"content" binding:"required"`
	ContactMethod entity.PreferredContact       `json:"contactMethod" binding:"required"`
	PhoneNumber   *string                       `json:"phoneNumber"`
	EmailAddress  *string                       `json:"emailAddress"`
	IsImportant   bool                          `json:"isImportant"`
	FollowUpDate  *time.Time                    `json:"followUpDate"`
}

func (h *CustomerHandler) LogCommunication() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p logCommunicationPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := customerpkg.LogCommunicationRequest{
			Type:          p.Type,
			Direction:     p.Direction,
			Subject:       p.Subject,
			Content:       p.Content,
			ContactMethod: p.ContactMethod,
			PhoneNumber:   p.PhoneNumber,
			EmailAddress:  p.EmailAddress,
			IsImportant:   p.IsImportant,
			FollowUpDate:  p.FollowUpDate,
			CreatedBy:     c.GetString("admin_email"),
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		comm, err := h.service.LogCommunication(ctx, id, req)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, comm)
	}
}

func (h *CustomerHandler) ListCommunications() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		comms, total, err := h.service.ListCommunications(ctx, id, queryInt(c, "page", 1), queryInt(c, "limit", 20))
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"communications": comms, "total": total})
	}
}

type createTaskPayload struct {
	Title       string                   `json:"title" binding:"required"`
	Description *string                  `json:"description"`
	Priority    *entity.CustomerPriority `json:"priority"`
	DueDate     *time.Time               `json:"dueDate"`
	AssignedTo  *string                  `json:"assignedTo"`
	QuoteID     *uuid.UUID               `json:"quoteId"`
}

func (h *CustomerHandler) CreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p createTaskPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := customerpkg.CreateTaskRequest{
			Title:       p.Title,
			Description: p.Description,
			Priority:    p.Priority,
			DueDate:     p.DueDate,
			AssignedTo:  p.AssignedTo,
			QuoteID:     p.QuoteID,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		task, err := h.service.CreateTask(ctx, id, req)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func (h *CustomerHandler) ListTasks() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var status *entity.TaskStatus
		if v := c.Query("status"); v != "" {
			s := entity.TaskStatus(v)
			status = &s
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		tasks, total, err := h.service.ListTasks(ctx, id, status, queryInt(c, "page", 1), queryInt(c, "limit", 20))
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": total})
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
