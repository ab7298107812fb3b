package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/samedayramps/samedayramps-application/entity"
)

// AdminRepository specifies admin-user related database operations.
// GetAdminByEmail returns (nil, nil) when no admin carries the email.
type AdminRepository interface {
	StoreAdmin(ctx context.Context, a *entity.AdminUser) (*entity.AdminUser, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}
