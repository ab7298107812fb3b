package admin

import (
	"context"
	"errors"

	"github.com/samedayramps/samedayramps-application/entity"
)

// ErrEmailExists reports an admin registration colliding with an existing email.
var ErrEmailExists = errors.New("admin with this email already exists")

// RegisterAdminRequest carries the data required to register an admin user.
type RegisterAdminRequest struct {
	Name     string
	Email    string
	Password string
}

// AdminService exposes admin-user provisioning operations.
type AdminService interface {
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*entity.AdminUser, error)
}
