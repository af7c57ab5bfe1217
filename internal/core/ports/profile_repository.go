package ports

import (
	"context"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

// ProfileRepository defines persistence for user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
	FindByID(ctx context.Context, id string) (*domain.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	// Update merges the non-nil fields of upd into the stored profile.
	Update(ctx context.Context, id string, upd domain.ProfileUpdate) (*domain.UserProfile, error)
	// ListByRole returns all profiles with the given role (used for the
	// lecturer directory students book against).
	ListByRole(ctx context.Context, role string) ([]*domain.UserProfile, error)
}
