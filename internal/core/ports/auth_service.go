package ports

import (
	"context"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// SignupInput carries the registration form.
type SignupInput struct {
	Email      string
	Password   string
	Name       string
	Phone      string
	Role       domain.Role
	ProductKey string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
	ProductKey(email string, role domain.Role) (string, error)
}
