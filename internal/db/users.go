package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

// UpsertUser creates the user on first sign-in and refreshes the Google
// profile fields on every later one. Profile edits (display name,
// favorite team) are never clobbered here.
func (p *Postgres) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (uid, email, name, picture, role, display_name, favorite_team, created_at)
		VALUES ($1, $2, $3, $4, 'user', '', '', NOW())
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, picture = EXCLUDED.picture
		RETURNING uid, email, name, picture, role, display_name, favorite_team, created_at
	`

	var u models.User
	err := p.db.QueryRowContext(ctx, query, user.UID, user.Email, user.Name, user.Picture).Scan(
		&u.UID, &u.Email, &u.Name, &u.Picture, &u.Role,
		&u.DisplayName, &u.FavoriteTeam, &u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &u, nil
}

// UpdateUserProfile persists profile edits. Nil fields are left unchanged.
// Returns nil when the user does not exist.
func (p *Postgres) UpdateUserProfile(ctx context.Context, uid string, displayName, favoriteTeam *string) (*models.User, error) {
	query := `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
		    favorite_team = COALESCE($3, favorite_team)
		WHERE uid = $1
		RETURNING uid, email, name, picture, role, display_name, favorite_team, created_at
	`

	var u models.User
	err := p.db.QueryRowContext(ctx, query, uid, displayName, favoriteTeam).Scan(
		&u.UID, &u.Email, &u.Name, &u.Picture, &u.Role,
		&u.DisplayName, &u.FavoriteTeam, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	return &u, nil
}
