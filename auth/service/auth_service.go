package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	adminpkg "github.com/samedayramps/samedayramps-application/admin"
	authpkg "github.com/samedayramps/samedayramps-application/auth"
)

// authService implements auth.Service on top of the admin-user repository.
type authService struct {
	admins adminpkg.AdminRepository
	secret string
	ttl    time.Duration
}

// NewAuthService constructs an auth.Service signing tokens with the given
// secret and lifetime.
func NewAuthService(admins adminpkg.AdminRepository, secret string, ttl time.Duration) authpkg.Service {
	return &authService{admins: admins, secret: secret, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	a, err := s.admins.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, authpkg.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, authpkg.ErrInvalidCredentials
	}

	p := &authpkg.Principal{
		AdminID: a.ID.String(),
		Name:    a.Name,
		Email:   a.Email,
	}
	token, err := authpkg.SignJWT(s.secret, p, s.ttl)
	if err != nil {
		return nil, err
	}
	p.Token = token
	return p, nil
}
