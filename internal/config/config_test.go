package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/mina-p1/Open-Bet/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()

	if cfg.Server.Addr != ":5050" {
		t.Errorf("Expected default addr ':5050', got '%s'", cfg.Server.Addr)
	}

	if len(cfg.Server.CORSOrigins) != 2 {
		t.Errorf("Expected 2 default CORS origins, got %d", len(cfg.Server.CORSOrigins))
	}

	if cfg.Redis.URL != "redis://localhost:6379" {
		t.Errorf("Expected default redis URL 'redis://localhost:6379', got '%s'", cfg.Redis.URL)
	}

	if cfg.OddsAPI.APIKey != "" {
		t.Errorf("Expected empty default API key, got '%s'", cfg.OddsAPI.APIKey)
	}

	if cfg.OddsAPI.SportKey != "basketball_nba" {
		t.Errorf("Expected default sport 'basketball_nba', got '%s'", cfg.OddsAPI.SportKey)
	}

	if len(cfg.OddsAPI.Markets) != 3 {
		t.Fatalf("Expected 3 default markets, got %d", len(cfg.OddsAPI.Markets))
	}
	if cfg.OddsAPI.Markets[0] != "h2h" {
		t.Errorf("Expected first market 'h2h', got '%s'", cfg.OddsAPI.Markets[0])
	}

	if cfg.OddsAPI.PollInterval != 5*time.Minute {
		t.Errorf("Expected default poll interval 5m, got %s", cfg.OddsAPI.PollInterval)
	}

	if cfg.Bankroll != 100.0 {
		t.Errorf("Expected default bankroll 100, got %f", cfg.Bankroll)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENBET_ADDR", ":9090")
	os.Setenv("ODDS_API_KEY", "abc123")
	os.Setenv("ODDS_API_SPORT", "basketball_ncaab")
	os.Setenv("ODDS_API_REGIONS", "us")
	os.Setenv("ODDS_POLL_INTERVAL", "90s")
	os.Setenv("ARB_BANKROLL", "250.5")
	defer os.Clearenv()

	cfg := config.Load()

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected addr ':9090', got '%s'", cfg.Server.Addr)
	}

	if cfg.OddsAPI.APIKey != "abc123" {
		t.Errorf("Expected API key 'abc123', got '%s'", cfg.OddsAPI.APIKey)
	}

	if cfg.OddsAPI.SportKey != "basketball_ncaab" {
		t.Errorf("Expected sport 'basketball_ncaab', got '%s'", cfg.OddsAPI.SportKey)
	}

	if len(cfg.OddsAPI.Regions) != 1 || cfg.OddsAPI.Regions[0] != "us" {
		t.Errorf("Expected regions [us], got %v", cfg.OddsAPI.Regions)
	}

	if cfg.OddsAPI.PollInterval != 90*time.Second {
		t.Errorf("Expected poll interval 90s, got %s", cfg.OddsAPI.PollInterval)
	}

	if cfg.Bankroll != 250.5 {
		t.Errorf("Expected bankroll 250.5, got %f", cfg.Bankroll)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("ODDS_POLL_INTERVAL", "not-a-duration")
	os.Setenv("ARB_BANKROLL", "lots")
	defer os.Clearenv()

	cfg := config.Load()

	if cfg.OddsAPI.PollInterval != 5*time.Minute {
		t.Errorf("Expected fallback poll interval 5m, got %s", cfg.OddsAPI.PollInterval)
	}
	if cfg.Bankroll != 100.0 {
		t.Errorf("Expected fallback bankroll 100, got %f", cfg.Bankroll)
	}
}

func TestLoad_ListsTrimmed(t *testing.T) {
	os.Clearenv()
	os.Setenv("ODDS_API_MARKETS", " h2h , spreads ,, totals ")
	defer os.Clearenv()

	cfg := config.Load()

	want := []string{"h2h", "spreads", "totals"}
	if len(cfg.OddsAPI.Markets) != len(want) {
		t.Fatalf("Expected %d markets, got %d", len(want), len(cfg.OddsAPI.Markets))
	}
	for i, m := range want {
		if cfg.OddsAPI.Markets[i] != m {
			t.Errorf("Market %d = '%s', want '%s'", i, cfg.OddsAPI.Markets[i], m)
		}
	}
}
