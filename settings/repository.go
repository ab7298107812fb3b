package settings

import (
	"context"

	"github.com/samedayramps/samedayramps-application/entity"
)

// Repository specifies settings related database operations. Get returns
// (nil, nil) when the singleton row does not exist yet.
type Repository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Store(ctx context.Context, s *entity.Settings) (*entity.Settings, error)
	Update(ctx context.Context, s *entity.Settings) (*entity.Settings, error)
}
