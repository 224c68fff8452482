package poller

import (
	"context"
	"testing"

	"github.com/mina-p1/Open-Bet/internal/config"
	"github.com/mina-p1/Open-Bet/pkg/models"
)

// projectionStore implements db.Store with canned projections; the other
// operations are unused by the poller paths under test
type projectionStore struct {
	projections map[string]models.TeamProjection
	err         error
}

func (s *projectionStore) GetProjections(ctx context.Context, date string) (map[string]models.TeamProjection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.projections, nil
}

func (s *projectionStore) GetHistoricalGames(ctx context.Context, date string, limit int) ([]models.HistoricalGame, error) {
	return nil, nil
}

func (s *projectionStore) GetPredictionHistory(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	return nil, nil
}

func (s *projectionStore) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	return nil, nil
}

func (s *projectionStore) UpdateUserProfile(ctx context.Context, uid string, displayName, favoriteTeam *string) (*models.User, error) {
	return nil, nil
}

func (s *projectionStore) GetDiscussions(ctx context.Context, threadDate string) ([]models.DiscussionPost, error) {
	return nil, nil
}

func (s *projectionStore) CreateDiscussion(ctx context.Context, post models.DiscussionPost) (*models.DiscussionPost, error) {
	return nil, nil
}

func (s *projectionStore) Ping(ctx context.Context) error { return nil }
func (s *projectionStore) Close() error                   { return nil }

func fp(f float64) *float64 { return &f }

func TestAttachPredictions(t *testing.T) {
	store := &projectionStore{
		projections: map[string]models.TeamProjection{
			"Boston Celtics":     {Team: "Boston Celtics", PredictedScore: 114.2, ModelPrice: fp(-160)},
			"Miami Heat":         {Team: "Miami Heat", PredictedScore: 106.8, ModelPrice: fp(140)},
			"Los Angeles Lakers": {Team: "Los Angeles Lakers", PredictedScore: 110.5, ModelPrice: fp(105)},
		},
	}
	p := &SnapshotPoller{store: store, cfg: config.OddsAPIConfig{SportKey: "basketball_nba"}}

	games := []models.Game{
		// Both sides projected
		{HomeTeam: "Boston Celtics", AwayTeam: "Miami Heat"},
		// Away-only projection must still attach
		{HomeTeam: "Denver Nuggets", AwayTeam: "Los Angeles Lakers"},
		// Neither side projected
		{HomeTeam: "Phoenix Suns", AwayTeam: "Dallas Mavericks"},
	}

	p.attachPredictions(context.Background(), games, "2024-01-15")

	both := games[0].Prediction
	if both == nil {
		t.Fatal("expected a prediction when both sides are projected")
	}
	if both.PredictedHomeScore != 114.2 || both.PredictedAwayScore != 106.8 {
		t.Errorf("unexpected scores: %+v", both)
	}
	if both.ModelHomePrice == nil || *both.ModelHomePrice != -160 {
		t.Errorf("ModelHomePrice = %v, want -160", both.ModelHomePrice)
	}

	awayOnly := games[1].Prediction
	if awayOnly == nil {
		t.Fatal("expected a prediction when only the away side is projected")
	}
	if awayOnly.PredictedAwayScore != 110.5 {
		t.Errorf("PredictedAwayScore = %f, want 110.5", awayOnly.PredictedAwayScore)
	}
	if awayOnly.ModelAwayPrice == nil || *awayOnly.ModelAwayPrice != 105 {
		t.Errorf("ModelAwayPrice = %v, want 105", awayOnly.ModelAwayPrice)
	}
	if awayOnly.ModelHomePrice != nil {
		t.Errorf("ModelHomePrice = %v, want nil for an unprojected home side", awayOnly.ModelHomePrice)
	}

	if games[2].Prediction != nil {
		t.Errorf("expected no prediction without projections, got %+v", games[2].Prediction)
	}
}

func TestAttachPredictionsStoreError(t *testing.T) {
	store := &projectionStore{err: context.DeadlineExceeded}
	p := &SnapshotPoller{store: store, cfg: config.OddsAPIConfig{SportKey: "basketball_nba"}}

	games := []models.Game{{HomeTeam: "Boston Celtics", AwayTeam: "Miami Heat"}}
	p.attachPredictions(context.Background(), games, "2024-01-15")

	// A projections failure degrades to bare games, never a dropped cycle
	if games[0].Prediction != nil {
		t.Errorf("expected no prediction on store error, got %+v", games[0].Prediction)
	}
}

func TestFilterToDay(t *testing.T) {
	games := []models.Game{
		{ID: "on-day", CommenceTime: "2024-01-15T00:30:00Z"},   // 7:30 PM Eastern Jan 14
		{ID: "next-day", CommenceTime: "2024-01-16T01:00:00Z"}, // 8:00 PM Eastern Jan 15
		{ID: "no-time", CommenceTime: ""},
		{ID: "bad-time", CommenceTime: "soon"},
	}

	got := filterToDay(games, "2024-01-14")

	if len(got) != 1 || got[0].ID != "on-day" {
		t.Errorf("filterToDay kept %+v, want only on-day", got)
	}
}
