package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/mina-p1/Open-Bet/pkg/lines"
	"github.com/mina-p1/Open-Bet/pkg/models"
	"github.com/mina-p1/Open-Bet/pkg/schedule"
)

const defaultHistoryLimit = 20

// LiveGame is a snapshot game annotated with the model-vs-market
// moneyline differential for each side, when a model price exists
type LiveGame struct {
	models.Game
	HomeValue *lines.MoneylineValue `json:"home_value,omitempty"`
	AwayValue *lines.MoneylineValue `json:"away_value,omitempty"`
}

// GetLiveOdds returns today's games with bookmaker quotes, model
// predictions, and per-side value flags, straight from the current snapshot
// GET /api/live-nba-odds
func (h *Handler) GetLiveOdds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := h.snapshots.ReadOdds(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve odds", err)
		return
	}

	// No snapshot yet is "no games", not an error
	if snap == nil {
		respondJSON(w, http.StatusOK, []LiveGame{})
		return
	}

	respondJSON(w, http.StatusOK, annotateValue(snap.Games))
}

// annotateValue compares each game's best moneyline against the model
// price for the same side. Games without a prediction pass through
// unannotated.
func annotateValue(games []models.Game) []LiveGame {
	out := make([]LiveGame, 0, len(games))
	for _, g := range games {
		lg := LiveGame{Game: g}
		if g.Prediction != nil {
			best := lines.ExtractBestLines(g).Moneyline
			if p := g.Prediction.ModelHomePrice; p != nil {
				lg.HomeValue = lines.ValueAgainstModel(*p, best[g.HomeTeam])
			}
			if p := g.Prediction.ModelAwayPrice; p != nil {
				lg.AwayValue = lines.ValueAgainstModel(*p, best[g.AwayTeam])
			}
		}
		out = append(out, lg)
	}
	return out
}

// GetHistoricalData returns past games with final scores
// GET /api/historical-data?date=2024-01-15
func (h *Handler) GetHistoricalData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	date := r.URL.Query().Get("date")
	if date != "" && !schedule.ValidDate(date) {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}

	limit := parseIntParam(r, "limit", defaultHistoryLimit)
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > 500 {
		limit = 500
	}

	games, err := h.store.GetHistoricalGames(ctx, date, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve historical games", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// GetPredictionHistory returns archived model predictions with outcomes
// GET /api/prediction-history
func (h *Handler) GetPredictionHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := parseIntParam(r, "limit", 100)
	if limit < 1 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	records, err := h.store.GetPredictionHistory(ctx, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve prediction history", err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// GetPlayerProps returns the flattened player prop lines for today's games
// GET /api/player-props
func (h *Handler) GetPlayerProps(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := h.snapshots.ReadProps(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve player props", err)
		return
	}

	if snap == nil || snap.Props == nil {
		respondJSON(w, http.StatusOK, []models.PlayerProp{})
		return
	}

	respondJSON(w, http.StatusOK, snap.Props)
}
