package models

import "time"

// HistoricalGame is a past game with final scores
type HistoricalGame struct {
	GameDate     string `json:"game_date"` // YYYY-MM-DD, Eastern
	TeamNameHome string `json:"team_name_home"`
	TeamNameAway string `json:"team_name_away"`
	PtsHome      int    `json:"pts_home"`
	PtsAway      int    `json:"pts_away"`
}

// PredictionRecord is one archived model prediction with its outcome
type PredictionRecord struct {
	GameDate           string  `json:"game_date"`
	HomeTeam           string  `json:"home_team"`
	AwayTeam           string  `json:"away_team"`
	PredictedHomeScore float64 `json:"predicted_home_score"`
	PredictedAwayScore float64 `json:"predicted_away_score"`
	ActualHomeScore    *int    `json:"actual_home_score,omitempty"`
	ActualAwayScore    *int    `json:"actual_away_score,omitempty"`
	Correct            *bool   `json:"correct,omitempty"`
}

// TeamProjection is the model's nightly projection for one team
type TeamProjection struct {
	Team           string   `json:"team"`
	PredictedScore float64  `json:"predicted_score"`
	ModelPrice     *float64 `json:"model_price,omitempty"` // American odds
}

// User is an authenticated account, keyed by the Google subject id
type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture"`
	Role         string    `json:"role"`
	DisplayName  string    `json:"displayName"`
	FavoriteTeam string    `json:"favoriteTeam"`
	CreatedAt    time.Time `json:"created_at"`
}

// DiscussionPost is one message in a daily discussion thread
type DiscussionPost struct {
	ID         string    `json:"id"`
	ThreadDate string    `json:"date"` // YYYY-MM-DD thread key
	UID        string    `json:"uid"`
	Name       string    `json:"name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrorResponse is the error body every endpoint returns
type ErrorResponse struct {
	Error string `json:"error"`
}
