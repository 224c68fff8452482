package poller

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/mina-p1/Open-Bet/internal/adapters/theoddsapi"
	"github.com/mina-p1/Open-Bet/internal/cache"
	"github.com/mina-p1/Open-Bet/internal/config"
	"github.com/mina-p1/Open-Bet/internal/db"
	"github.com/mina-p1/Open-Bet/pkg/models"
	"github.com/mina-p1/Open-Bet/pkg/schedule"
)

// SnapshotPoller refreshes the odds and props snapshots on an interval.
// Each cycle fully replaces the previous snapshot or leaves it untouched;
// the generation number makes a cycle that resolves late lose to the one
// initiated after it.
type SnapshotPoller struct {
	client     *theoddsapi.Client
	store      db.Store
	cache      *cache.SnapshotCache
	cfg        config.OddsAPIConfig
	generation atomic.Uint64
}

// NewSnapshotPoller creates a poller
func NewSnapshotPoller(client *theoddsapi.Client, store db.Store, snapshots *cache.SnapshotCache, cfg config.OddsAPIConfig) *SnapshotPoller {
	return &SnapshotPoller{
		client: client,
		store:  store,
		cache:  snapshots,
		cfg:    cfg,
	}
}

// Run starts the polling loop until the context is cancelled
func (p *SnapshotPoller) Run(ctx context.Context) {
	log.Printf("[%s] Starting snapshot poller (every %s)", p.cfg.SportKey, p.cfg.PollInterval)

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	// Do initial poll
	p.pollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[%s] Stopping snapshot poller", p.cfg.SportKey)
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

// pollOnce performs one refresh cycle. A failed cycle logs and leaves the
// previous snapshot serving; the next tick tries again.
func (p *SnapshotPoller) pollOnce(ctx context.Context) {
	gen := p.generation.Add(1)
	today := schedule.Today()

	games, err := p.client.FetchOdds(ctx, p.cfg.Regions, p.cfg.Markets)
	if err != nil {
		log.Printf("[%s] Error fetching odds: %v", p.cfg.SportKey, err)
		return
	}

	todays := filterToDay(games, today)
	log.Printf("[%s] Fetched %d games, %d on %s", p.cfg.SportKey, len(games), len(todays), today)

	p.attachPredictions(ctx, todays, today)

	snap := &cache.OddsSnapshot{
		Generation: gen,
		Date:       today,
		FetchedAt:  time.Now().UTC(),
		Games:      todays,
	}
	if err := p.cache.WriteOdds(ctx, snap); err != nil {
		if err == cache.ErrStaleSnapshot {
			log.Printf("[%s] Odds cycle %d superseded, discarding", p.cfg.SportKey, gen)
			return
		}
		log.Printf("[%s] Error writing odds snapshot: %v", p.cfg.SportKey, err)
		return
	}

	p.refreshProps(ctx, gen, todays)
}

// attachPredictions joins the nightly model projections onto today's
// games by team name. Games without projections stay bare; the odds view
// renders them without a value column.
func (p *SnapshotPoller) attachPredictions(ctx context.Context, games []models.Game, date string) {
	projections, err := p.store.GetProjections(ctx, date)
	if err != nil {
		log.Printf("[%s] Error loading projections: %v", p.cfg.SportKey, err)
		return
	}
	if len(projections) == 0 {
		return
	}

	for i := range games {
		home, okHome := projections[games[i].HomeTeam]
		away, okAway := projections[games[i].AwayTeam]
		if !okHome && !okAway {
			continue
		}

		pred := &models.GamePrediction{}
		if okHome {
			pred.PredictedHomeScore = home.PredictedScore
			pred.ModelHomePrice = home.ModelPrice
		}
		if okAway {
			pred.PredictedAwayScore = away.PredictedScore
			pred.ModelAwayPrice = away.ModelPrice
		}
		games[i].Prediction = pred
	}
}

// refreshProps fetches player props for each of today's games and writes
// the combined snapshot. Games whose prop fetch fails are skipped rather
// than failing the set.
func (p *SnapshotPoller) refreshProps(ctx context.Context, gen uint64, games []models.Game) {
	var props []models.PlayerProp

	for _, g := range games {
		gameProps, err := p.client.FetchPlayerProps(ctx, g.ID, p.cfg.Regions, p.cfg.PropMarkets)
		if err != nil {
			log.Printf("[%s] Error fetching props for %s: %v", p.cfg.SportKey, g.ID, err)
			continue
		}
		props = append(props, gameProps...)
	}

	snap := &cache.PropsSnapshot{
		Generation: gen,
		FetchedAt:  time.Now().UTC(),
		Props:      props,
	}
	if err := p.cache.WriteProps(ctx, snap); err != nil {
		if err == cache.ErrStaleSnapshot {
			log.Printf("[%s] Props cycle %d superseded, discarding", p.cfg.SportKey, gen)
			return
		}
		log.Printf("[%s] Error writing props snapshot: %v", p.cfg.SportKey, err)
	}
}

// filterToDay keeps games whose start instant falls on the given Eastern
// date. Games with missing or unparseable start times belong to no day.
func filterToDay(games []models.Game, date string) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		start, ok := schedule.ParseInstant(g.CommenceTime)
		if !ok {
			continue
		}
		if schedule.SameDay(start, date) {
			out = append(out, g)
		}
	}
	return out
}
