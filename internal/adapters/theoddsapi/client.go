package theoddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

const (
	baseURL    = "https://api.the-odds-api.com"
	apiVersion = "v4"
	userAgent  = "OpenBet/1.0 (NBA Odds Backend)"
	timeout    = 10 * time.Second
	maxRetries = 3
	retryDelay = 2 * time.Second
)

// RateLimits contains The Odds API quota information from response headers
type RateLimits struct {
	RequestsRemaining int
	RequestsUsed      int
}

// Client fetches odds and player props from The Odds API
type Client struct {
	apiKey     string
	sportKey   string
	httpClient *http.Client
	base       string
	rateLimits RateLimits
	mu         sync.RWMutex
}

// NewClient creates a new The Odds API client
func NewClient(apiKey, sportKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		sportKey: sportKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		base: baseURL,
	}
}

// NewClientWithBaseURL creates a client against an alternate host, so
// tests can stand in an httptest server
func NewClientWithBaseURL(apiKey, sportKey, base string) *Client {
	c := NewClient(apiKey, sportKey)
	c.base = base
	return c
}

// FetchOdds retrieves featured market odds (h2h, spreads, totals) for all
// upcoming games. The response decodes directly into the Game wire shape
// the API serves; commence times stay raw strings so one malformed game
// cannot fail the whole fetch.
func (c *Client) FetchOdds(ctx context.Context, regions, markets []string) ([]models.Game, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/odds", c.base, apiVersion, c.sportKey)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(regions, ","))
	params.Set("markets", strings.Join(markets, ","))
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")

	body, err := c.doRequestWithRetry(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("fetch odds failed: %w", err)
	}

	var games []models.Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("parse odds response: %w", err)
	}

	for i := range games {
		games[i].SportKey = c.sportKey
	}

	return games, nil
}

// FetchPlayerProps retrieves player prop markets for one event and
// flattens them into one record per priced outcome
func (c *Client) FetchPlayerProps(ctx context.Context, eventID string, regions, propMarkets []string) ([]models.PlayerProp, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/events/%s/odds", c.base, apiVersion, c.sportKey, eventID)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(regions, ","))
	params.Set("markets", strings.Join(propMarkets, ","))
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")

	body, err := c.doRequestWithRetry(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("fetch event props failed: %w", err)
	}

	var event propsEventResponse
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("parse event props response: %w", err)
	}

	return flattenProps(event), nil
}

// GetRateLimits returns the most recently observed quota headers
func (c *Client) GetRateLimits() RateLimits {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rateLimits
}

// propsEventResponse mirrors the per-event odds payload. Prop outcomes use
// "description" for the player and "name" for Over/Under.
type propsEventResponse struct {
	ID           string `json:"id"`
	CommenceTime string `json:"commence_time"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	Bookmakers   []struct {
		Key     string `json:"key"`
		Title   string `json:"title"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name        string   `json:"name"`
				Description string   `json:"description"`
				Price       int      `json:"price"`
				Point       *float64 `json:"point"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

// flattenProps turns the nested bookmaker/market/outcome tree into the
// flat records the props view consumes. Outcomes without a price are
// dropped; a missing point is kept as nil and rendered absent downstream.
func flattenProps(event propsEventResponse) []models.PlayerProp {
	var props []models.PlayerProp

	for _, book := range event.Bookmakers {
		bookName := book.Title
		if bookName == "" {
			bookName = book.Key
		}

		for _, market := range book.Markets {
			for _, outcome := range market.Outcomes {
				if outcome.Price == 0 || outcome.Description == "" {
					continue
				}

				props = append(props, models.PlayerProp{
					GameID:       event.ID,
					HomeTeam:     event.HomeTeam,
					AwayTeam:     event.AwayTeam,
					CommenceTime: event.CommenceTime,
					Bookmaker:    bookName,
					Market:       market.Key,
					Player:       outcome.Description,
					Line:         outcome.Point,
					Price:        outcome.Price,
					OverUnder:    outcome.Name,
				})
			}
		}
	}

	return props
}

// httpError wraps a non-200 response
type httpError struct {
	StatusCode int
	Message    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doRequestWithRetry performs HTTP request with retry logic
func (c *Client) doRequestWithRetry(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			backoff := retryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := c.doRequest(ctx, fullURL)
		if err == nil {
			return body, nil
		}

		lastErr = err

		// Don't retry on client errors (4xx except 429)
		if httpErr, ok := err.(*httpError); ok {
			if httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 && httpErr.StatusCode != 429 {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doRequest performs a single HTTP request
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.updateRateLimits(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}

// updateRateLimits extracts quota info from response headers
func (c *Client) updateRateLimits(headers http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remaining := headers.Get("x-requests-remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimits.RequestsRemaining = val
		}
	}

	if used := headers.Get("x-requests-used"); used != "" {
		if val, err := strconv.Atoi(used); err == nil {
			c.rateLimits.RequestsUsed = val
		}
	}
}
