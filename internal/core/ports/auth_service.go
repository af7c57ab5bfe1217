package ports

import (
	"context"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	// Role-specific attributes; ignored when they do not match the role.
	Program    string
	Year       int
	Department string
}

// AuthService implements registration, login, and profile self-service.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.UserProfile, error)
	// Login returns a signed token and the authenticated profile.
	Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error)
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)
	// UpdateProfile merges the non-nil fields; only the owner may call it.
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.UserProfile, error)
	// Lecturers returns the lecturer directory students book against.
	Lecturers(ctx context.Context) ([]*domain.UserProfile, error)
}
