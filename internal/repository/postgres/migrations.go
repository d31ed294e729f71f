package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const migration001Up = `
CREATE TABLE IF NOT EXISTS profiles (
    id UUID PRIMARY KEY,
    first_name TEXT NOT NULL,
    age INTEGER NOT NULL,
    neighborhood TEXT NOT NULL,
    gender_identity TEXT NOT NULL,
    gender_self_describe TEXT NOT NULL DEFAULT '',
    pronouns TEXT NOT NULL,
    pronouns_other TEXT NOT NULL DEFAULT '',
    interested_in TEXT[] NOT NULL,
    profile_values TEXT[] NOT NULL,
    friday_night TEXT NOT NULL,
    relationship_vision TEXT NOT NULL DEFAULT '',
    past_lesson TEXT NOT NULL DEFAULT '',
    love_language TEXT NOT NULL DEFAULT '',
    conflict_style TEXT NOT NULL DEFAULT '',
    looking_for TEXT NOT NULL,
    communication_style TEXT NOT NULL,
    non_negotiables TEXT[] NOT NULL,
    unexpected_thing TEXT NOT NULL,
    dietary_preferences TEXT[] NOT NULL,
    ready_to_show_up BOOLEAN NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_age CHECK (age >= 25 AND age <= 120),
    CONSTRAINT ready CHECK (ready_to_show_up)
);
`

const migration002Up = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

var migrations = []string{migration001Up, migration002Up}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %03d failed: %w", i+1, err)
		}
	}
	return nil
}
