package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// response never discloses which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginRequest is an email/password admin login.
type LoginRequest struct {
	Email    string
	Password string
}

// Principal is an authenticated admin plus their signed token.
type Principal struct {
	AdminID string
	Name    string
	Email   string
	Token   string
}

// Service provides login operations for back-office admins.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
}
