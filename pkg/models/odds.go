package models

// Outcome is a single priced side within a market: a team name for
// moneyline/spreads, or "Over"/"Under" for totals.
type Outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`           // American odds; 0 means no quote
	Point *float64 `json:"point,omitempty"` // Spread margin or total threshold
}

// Market is one market kind quoted by a bookmaker
type Market struct {
	Key      string    `json:"key"` // h2h, spreads, totals
	Outcomes []Outcome `json:"outcomes"`
}

// BookmakerQuote is one bookmaker's set of markets for a game
type BookmakerQuote struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Game is a single event with its bookmaker quotes, wire-compatible with
// The Odds API event shape the frontend already consumes.
// CommenceTime stays a raw string: a missing or unparseable start time must
// degrade to "no date bucket", never fail the whole snapshot decode.
type Game struct {
	ID           string           `json:"id"`
	SportKey     string           `json:"sport_key"`
	CommenceTime string           `json:"commence_time"`
	HomeTeam     string           `json:"home_team"`
	AwayTeam     string           `json:"away_team"`
	Bookmakers   []BookmakerQuote `json:"bookmakers"`
	Prediction   *GamePrediction  `json:"openbet_prediction,omitempty"`
}

// GamePrediction carries the nightly model output attached to a game.
// Model prices are American odds implied by the score model; they feed the
// moneyline value differential on the odds view.
type GamePrediction struct {
	PredictedHomeScore float64  `json:"predicted_home_score"`
	PredictedAwayScore float64  `json:"predicted_away_score"`
	ModelHomePrice     *float64 `json:"model_home_price,omitempty"`
	ModelAwayPrice     *float64 `json:"model_away_price,omitempty"`
}

// PlayerProp is one flattened player prop line
type PlayerProp struct {
	GameID       string   `json:"game_id"`
	HomeTeam     string   `json:"home_team"`
	AwayTeam     string   `json:"away_team"`
	CommenceTime string   `json:"commence_time"`
	Bookmaker    string   `json:"bookmaker"`
	Market       string   `json:"market"` // player_points, player_rebounds, ...
	Player       string   `json:"player"`
	Line         *float64 `json:"line"`
	Price        int      `json:"price"`
	OverUnder    string   `json:"over_under"` // "Over" or "Under"
}

// ArbitrageOpportunity is a sized two-way arbitrage across the best
// moneyline price on each side. Derived on demand from the current
// snapshot; never persisted.
type ArbitrageOpportunity struct {
	GameID           string  `json:"game_id"`
	HomeTeam         string  `json:"home_team"`
	AwayTeam         string  `json:"away_team"`
	CommenceTime     string  `json:"commence_time"`
	HomeBook         string  `json:"home_book"`
	HomePrice        int     `json:"home_price"`
	AwayBook         string  `json:"away_book"`
	AwayPrice        int     `json:"away_price"`
	TotalImpliedProb float64 `json:"total_implied_prob"` // percent
	EdgePercent      float64 `json:"edge_percent"`
	Bankroll         float64 `json:"bankroll"`
	StakeHome        float64 `json:"stake_home"`
	StakeAway        float64 `json:"stake_away"`
	GuaranteedProfit float64 `json:"guaranteed_profit"`
	GuaranteedPct    float64 `json:"guaranteed_profit_pct"`
}
