package ports

import (
	"context"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// UserRepository is the identity store consumed by the auth core.
// Lookups return domain.ErrUserNotFound when nothing matches; Create returns
// domain.ErrAccountExists when the email is already taken.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
