package db

import (
	"context"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

// Store defines the database operations the API needs
type Store interface {
	GetHistoricalGames(ctx context.Context, date string, limit int) ([]models.HistoricalGame, error)
	GetPredictionHistory(ctx context.Context, limit int) ([]models.PredictionRecord, error)
	GetProjections(ctx context.Context, date string) (map[string]models.TeamProjection, error)

	UpsertUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUserProfile(ctx context.Context, uid string, displayName, favoriteTeam *string) (*models.User, error)

	GetDiscussions(ctx context.Context, threadDate string) ([]models.DiscussionPost, error)
	CreateDiscussion(ctx context.Context, post models.DiscussionPost) (*models.DiscussionPost, error)

	Ping(ctx context.Context) error
	Close() error
}
