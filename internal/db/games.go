package db

import (
	"context"
	"fmt"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

// GetHistoricalGames returns past games with final scores. With a date it
// returns that Eastern day's slate; without one, the most recent games up
// to limit.
func (p *Postgres) GetHistoricalGames(ctx context.Context, date string, limit int) ([]models.HistoricalGame, error) {
	query := `
		SELECT game_date, team_name_home, team_name_away, pts_home, pts_away
		FROM historical_games
	`

	args := []interface{}{}
	if date != "" {
		query += ` WHERE game_date = $1 ORDER BY game_date DESC`
		args = append(args, date)
	} else {
		query += ` ORDER BY game_date DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query historical games: %w", err)
	}
	defer rows.Close()

	games := []models.HistoricalGame{}
	for rows.Next() {
		var g models.HistoricalGame
		if err := rows.Scan(&g.GameDate, &g.TeamNameHome, &g.TeamNameAway, &g.PtsHome, &g.PtsAway); err != nil {
			return nil, fmt.Errorf("failed to scan historical game: %w", err)
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// GetPredictionHistory returns archived model predictions, newest first
func (p *Postgres) GetPredictionHistory(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	query := `
		SELECT game_date, home_team, away_team,
		       predicted_home_score, predicted_away_score,
		       actual_home_score, actual_away_score, correct
		FROM prediction_history
		ORDER BY game_date DESC
		LIMIT $1
	`

	rows, err := p.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction history: %w", err)
	}
	defer rows.Close()

	records := []models.PredictionRecord{}
	for rows.Next() {
		var r models.PredictionRecord
		if err := rows.Scan(
			&r.GameDate, &r.HomeTeam, &r.AwayTeam,
			&r.PredictedHomeScore, &r.PredictedAwayScore,
			&r.ActualHomeScore, &r.ActualAwayScore, &r.Correct,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// GetProjections returns the model's team projections for a date, keyed by
// team name (team names are the only join key the odds feed offers)
func (p *Postgres) GetProjections(ctx context.Context, date string) (map[string]models.TeamProjection, error) {
	query := `
		SELECT team, predicted_score, model_price
		FROM team_projections
		WHERE projection_date = $1
	`

	rows, err := p.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query projections: %w", err)
	}
	defer rows.Close()

	projections := make(map[string]models.TeamProjection)
	for rows.Next() {
		var t models.TeamProjection
		if err := rows.Scan(&t.Team, &t.PredictedScore, &t.ModelPrice); err != nil {
			return nil, fmt.Errorf("failed to scan projection: %w", err)
		}
		projections[t.Team] = t
	}

	return projections, rows.Err()
}
