package ports

import (
	"context"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

// RegisterInput carries the details of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	UserType string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and the declared user type, returning a
	// signed token and the user record.
	Login(ctx context.Context, email, password, userType string) (string, *domain.User, error)
}
