package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

// SnapshotTTL caps how long a snapshot serves after the poller dies.
// Odds older than a day are worse than no odds.
const SnapshotTTL = 24 * time.Hour

// ErrStaleSnapshot means a newer generation was already written; the
// caller's fetch cycle was superseded and its result must be discarded
var ErrStaleSnapshot = errors.New("snapshot superseded by a newer generation")

// OddsSnapshot is the full odds result set for one Eastern date. It is
// replaced atomically: readers see either the whole new snapshot or the
// previous one, never a mix.
type OddsSnapshot struct {
	Generation uint64        `json:"generation"`
	Date       string        `json:"date"`
	FetchedAt  time.Time     `json:"fetched_at"`
	Games      []models.Game `json:"games"`
}

// PropsSnapshot is the full player-props result set
type PropsSnapshot struct {
	Generation uint64              `json:"generation"`
	FetchedAt  time.Time           `json:"fetched_at"`
	Props      []models.PlayerProp `json:"props"`
}

// SnapshotCache stores odds and props snapshots in Redis
type SnapshotCache struct {
	client   *redis.Client
	sportKey string
}

// NewSnapshotCache creates a snapshot cache for one sport
func NewSnapshotCache(client *redis.Client, sportKey string) *SnapshotCache {
	return &SnapshotCache{
		client:   client,
		sportKey: sportKey,
	}
}

// WriteOdds replaces the odds snapshot. Writes from a superseded fetch
// cycle (lower generation than what is stored) are rejected with
// ErrStaleSnapshot: last-initiated wins, not last-resolved.
func (c *SnapshotCache) WriteOdds(ctx context.Context, snap *OddsSnapshot) error {
	key := c.oddsKey()

	current, err := c.ReadOdds(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.Generation >= snap.Generation {
		return ErrStaleSnapshot
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling odds snapshot: %w", err)
	}

	return c.client.Set(ctx, key, data, SnapshotTTL).Err()
}

// ReadOdds returns the current odds snapshot, or nil when none exists
func (c *SnapshotCache) ReadOdds(ctx context.Context) (*OddsSnapshot, error) {
	data, err := c.client.Get(ctx, c.oddsKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading odds snapshot: %w", err)
	}

	var snap OddsSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("parsing odds snapshot: %w", err)
	}

	return &snap, nil
}

// WriteProps replaces the props snapshot, with the same generation guard
// as WriteOdds
func (c *SnapshotCache) WriteProps(ctx context.Context, snap *PropsSnapshot) error {
	key := c.propsKey()

	current, err := c.ReadProps(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.Generation >= snap.Generation {
		return ErrStaleSnapshot
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling props snapshot: %w", err)
	}

	return c.client.Set(ctx, key, data, SnapshotTTL).Err()
}

// ReadProps returns the current props snapshot, or nil when none exists
func (c *SnapshotCache) ReadProps(ctx context.Context) (*PropsSnapshot, error) {
	data, err := c.client.Get(ctx, c.propsKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading props snapshot: %w", err)
	}

	var snap PropsSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("parsing props snapshot: %w", err)
	}

	return &snap, nil
}

// Ping checks Redis connectivity
func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *SnapshotCache) oddsKey() string {
	return fmt.Sprintf("odds:snapshot:%s", c.sportKey)
}

func (c *SnapshotCache) propsKey() string {
	return fmt.Sprintf("props:snapshot:%s", c.sportKey)
}
