package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema statements are idempotent so both the server and the seeder
// can run them at startup against an empty or existing database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS zodiac_signs (
		id INTEGER PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE,
		english_name VARCHAR(50) NOT NULL UNIQUE,
		start_month INTEGER NOT NULL,
		start_day INTEGER NOT NULL,
		end_month INTEGER NOT NULL,
		end_day INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS zodiac_compatibilities (
		id INTEGER PRIMARY KEY,
		sign_id INTEGER NOT NULL REFERENCES zodiac_signs(id) ON DELETE CASCADE,
		compatible_sign_id INTEGER NOT NULL REFERENCES zodiac_signs(id) ON DELETE CASCADE,
		UNIQUE (sign_id, compatible_sign_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		birth_date DATE NOT NULL,
		zodiac_sign_id INTEGER REFERENCES zodiac_signs(id),
		bio TEXT,
		image_filename VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_zodiac_sign_id ON users(zodiac_sign_id)`,
	`CREATE TABLE IF NOT EXISTS swipes (
		id SERIAL PRIMARY KEY,
		actor_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		target_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_like BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (actor_id, target_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_swipes_target_id ON swipes(target_id)`,
}

// Migrate creates the schema if it does not exist yet
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
