package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	adminpkg "github.com/samedayramps/samedayramps-application/admin"
	authpkg "github.com/samedayramps/samedayramps-application/auth"
)

type AuthHandler struct {
	auth   authpkg.Service
	admins adminpkg.AdminService
}

func NewAuthHandler(auth authpkg.Service, admins adminpkg.AdminService) *AuthHandler {
	return &AuthHandler{auth: auth, admins: admins}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := h.auth.Login(ctx, authpkg.LoginRequest{Email: p.Email, Password: p.Password})
		if err != nil {
			if errors.Is(err, authpkg.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":    principal.Token,
			"admin_id": principal.AdminID,
			"name":     principal.Name,
			"email":    principal.Email,
		})
	}
}

type registerAdminPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) RegisterAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerAdminPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		a, err := h.admins.RegisterAdmin(ctx, adminpkg.RegisterAdminRequest{
			Name:     p.Name,
			Email:    p.Email,
			Password: p.Password,
		})
		if err != nil {
			if errors.Is(err, adminpkg.ErrEmailExists) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register admin", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}
