package repository

import (
	"context"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
)

// ProfileRepository stores onboarding profiles. Profiles are insert-only.
type ProfileRepository interface {
	// Create assigns ID and CreatedAt and stores the profile.
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByID returns domain.ErrProfileNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}
