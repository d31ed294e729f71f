package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/repository"
	"github.com/google/uuid"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
}

// NewProfileRepository returns a process-lifetime profile store with no eviction.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: make(map[string]*domain.Profile)}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	profile.ID = uuid.NewString()
	profile.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.profiles[profile.ID] = cloneProfile(profile)
	r.mu.Unlock()
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	r.mu.RLock()
	profile, ok := r.profiles[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(profile), nil
}

// cloneProfile keeps stored records isolated from caller mutation.
func cloneProfile(p *domain.Profile) *domain.Profile {
	c := *p
	c.InterestedIn = append([]string(nil), p.InterestedIn...)
	c.Values = append([]string(nil), p.Values...)
	c.NonNegotiables = append([]string(nil), p.NonNegotiables...)
	c.DietaryPreferences = append([]string(nil), p.DietaryPreferences...)
	return &c
}
