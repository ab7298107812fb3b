package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	adminpkg "github.com/samedayramps/samedayramps-application/admin"
	"github.com/samedayramps/samedayramps-application/entity"
)

// adminService implements AdminService.
type adminService struct {
	repo adminpkg.AdminRepository
}

// NewAdminService constructs an AdminService backed by the provided repository.
func NewAdminService(repo adminpkg.AdminRepository) adminpkg.AdminService {
	return &adminService{repo: repo}
}

// RegisterAdmin creates an admin user with a bcrypt password hash.
func (s *adminService) RegisterAdmin(ctx context.Context, req adminpkg.RegisterAdminRequest) (*entity.AdminUser, error) {
	existing, err := s.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, adminpkg.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &entity.AdminUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	return s.repo.StoreAdmin(ctx, a)
}
