package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/mina-p1/Open-Bet/pkg/lines"
	"github.com/mina-p1/Open-Bet/pkg/models"
	"github.com/mina-p1/Open-Bet/pkg/oddsmath"
)

// GetArbitrage scans the current snapshot for two-way moneyline
// arbitrage across books and returns sized opportunities
// GET /api/arbitrage
func (h *Handler) GetArbitrage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snap, err := h.snapshots.ReadOdds(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve odds", err)
		return
	}

	opportunities := []models.ArbitrageOpportunity{}
	if snap != nil {
		opportunities = findOpportunities(snap.Games, h.bankroll)
	}

	respondJSON(w, http.StatusOK, opportunities)
}

// findOpportunities computes arbitrage for each game from the best
// moneyline price per side. Games with a missing side or a round market
// are simply not opportunities.
func findOpportunities(games []models.Game, bankroll float64) []models.ArbitrageOpportunity {
	opportunities := []models.ArbitrageOpportunity{}

	for _, g := range games {
		best := lines.ExtractBestLines(g)

		away, awayOK := best.Moneyline[g.AwayTeam]
		home, homeOK := best.Moneyline[g.HomeTeam]
		if !awayOK || !homeOK {
			continue
		}

		arb := oddsmath.FindArbitrage(
			oddsmath.MoneylineQuote{Book: away.Book, Price: away.Price},
			oddsmath.MoneylineQuote{Book: home.Book, Price: home.Price},
			bankroll,
		)
		if arb == nil {
			continue
		}

		opportunities = append(opportunities, models.ArbitrageOpportunity{
			GameID:           g.ID,
			HomeTeam:         g.HomeTeam,
			AwayTeam:         g.AwayTeam,
			CommenceTime:     g.CommenceTime,
			HomeBook:         arb.Home.Book,
			HomePrice:        arb.Home.Price,
			AwayBook:         arb.Away.Book,
			AwayPrice:        arb.Away.Price,
			TotalImpliedProb: round2(arb.CombinedImplied * 100.0),
			EdgePercent:      round2((1.0 - arb.CombinedImplied) * 100.0),
			Bankroll:         arb.Bankroll,
			StakeHome:        round2(arb.StakeHome),
			StakeAway:        round2(arb.StakeAway),
			GuaranteedProfit: round2(arb.GuaranteedProfit),
			GuaranteedPct:    round2(arb.ProfitPercent),
		})
	}

	return opportunities
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
