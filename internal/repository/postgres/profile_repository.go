package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, first_name, age, neighborhood, gender_identity, gender_self_describe,
			pronouns, pronouns_other, interested_in, profile_values, friday_night,
			relationship_vision, past_lesson, love_language, conflict_style,
			looking_for, communication_style, non_negotiables, unexpected_thing,
			dietary_preferences, ready_to_show_up
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING created_at
	`
	id := uuid.NewString()
	err := r.db.QueryRowContext(
		ctx, query,
		id, profile.FirstName, profile.Age, profile.Neighborhood,
		profile.GenderIdentity, profile.GenderSelfDescribe,
		profile.Pronouns, profile.PronounsOther,
		pq.Array(profile.InterestedIn), pq.Array(profile.Values), profile.FridayNight,
		profile.RelationshipVision, profile.PastLesson, profile.LoveLanguage, profile.ConflictStyle,
		profile.LookingFor, profile.CommunicationStyle, pq.Array(profile.NonNegotiables),
		profile.UnexpectedThing, pq.Array(profile.DietaryPreferences), profile.ReadyToShowUp,
	).Scan(&profile.CreatedAt)
	if err != nil {
		return err
	}
	profile.ID = id
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var profile domain.Profile
	query := `
		SELECT id, first_name, age, neighborhood, gender_identity, gender_self_describe,
		       pronouns, pronouns_other, interested_in, profile_values, friday_night,
		       relationship_vision, past_lesson, love_language, conflict_style,
		       looking_for, communication_style, non_negotiables, unexpected_thing,
		       dietary_preferences, ready_to_show_up, created_at
		FROM profiles WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID, &profile.FirstName, &profile.Age, &profile.Neighborhood,
		&profile.GenderIdentity, &profile.GenderSelfDescribe,
		&profile.Pronouns, &profile.PronounsOther,
		pq.Array(&profile.InterestedIn), pq.Array(&profile.Values), &profile.FridayNight,
		&profile.RelationshipVision, &profile.PastLesson, &profile.LoveLanguage, &profile.ConflictStyle,
		&profile.LookingFor, &profile.CommunicationStyle, pq.Array(&profile.NonNegotiables),
		&profile.UnexpectedThing, pq.Array(&profile.DietaryPreferences), &profile.ReadyToShowUp,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
