// Package redis stores profiles and users as JSON values in Redis.
// Keys never expire, matching the process-lifetime semantics of the memory store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "thirdplace:profile:"

type profileRepository struct {
	client *redis.Client
}

func NewProfileRepository(client *redis.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	profile.ID = uuid.NewString()
	profile.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	ok, err := r.client.SetNX(ctx, profileKeyPrefix+profile.ID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	if !ok {
		return fmt.Errorf("store profile: id collision %s", profile.ID)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	data, err := r.client.Get(ctx, profileKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &profile, nil
}
