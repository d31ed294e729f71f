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

const (
	userKeyPrefix     = "thirdplace:user:"
	usernameKeyPrefix = "thirdplace:username:"
)

// storedUser mirrors domain.User but keeps the password hash, which domain.User hides from JSON.
type storedUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type userRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	id := uuid.NewString()

	// The username index doubles as the uniqueness lock.
	claimed, err := r.client.SetNX(ctx, usernameKeyPrefix+user.Username, id, 0).Result()
	if err != nil {
		return fmt.Errorf("claim username: %w", err)
	}
	if !claimed {
		return domain.ErrUserAlreadyExists
	}

	user.ID = id
	user.CreatedAt = time.Now().UTC()
	data, err := json.Marshal(storedUser{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := r.client.Set(ctx, userKeyPrefix+id, data, 0).Err(); err != nil {
		r.client.Del(ctx, usernameKeyPrefix+user.Username)
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	data, err := r.client.Get(ctx, userKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	var su storedUser
	if err := json.Unmarshal(data, &su); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &domain.User{
		ID:           su.ID,
		Username:     su.Username,
		PasswordHash: su.PasswordHash,
		CreatedAt:    su.CreatedAt,
	}, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	id, err := r.client.Get(ctx, usernameKeyPrefix+username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	return r.GetByID(ctx, id)
}
