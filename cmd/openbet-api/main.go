package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/mina-p1/Open-Bet/internal/adapters/theoddsapi"
	"github.com/mina-p1/Open-Bet/internal/auth"
	"github.com/mina-p1/Open-Bet/internal/cache"
	"github.com/mina-p1/Open-Bet/internal/config"
	"github.com/mina-p1/Open-Bet/internal/db"
	"github.com/mina-p1/Open-Bet/internal/handlers"
	"github.com/mina-p1/Open-Bet/internal/poller"
)

func main() {
	fmt.Println("=== OpenBet API ===")

	cfg := config.Load()

	// Connect to Postgres
	store, err := db.NewPostgres(cfg.Postgres.DSN)
	if err != nil {
		fmt.Printf("❌ Failed to connect to Postgres: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("✓ Connected to Postgres")

	// Connect to Redis for odds snapshots
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		fmt.Printf("❌ Failed to parse Redis URL: %v\n", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Redis")

	snapshots := cache.NewSnapshotCache(redisClient, cfg.OddsAPI.SportKey)

	// Start the snapshot poller when an API key is configured; without
	// one the service still serves storage-backed endpoints
	pollerCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()

	if cfg.OddsAPI.APIKey != "" {
		oddsClient := theoddsapi.NewClient(cfg.OddsAPI.APIKey, cfg.OddsAPI.SportKey)
		snapshotPoller := poller.NewSnapshotPoller(oddsClient, store, snapshots, cfg.OddsAPI)
		go snapshotPoller.Run(pollerCtx)
		fmt.Println("✓ Snapshot poller started")
	} else {
		fmt.Println("⚠️  ODDS_API_KEY not set, snapshot poller disabled")
	}

	// Initialize handlers
	verifier := auth.NewVerifier(cfg.Auth.GoogleClientID)
	handler := handlers.NewHandler(store, snapshots, verifier, cfg.Bankroll)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/historical-data", handler.GetHistoricalData)
		r.Get("/live-nba-odds", handler.GetLiveOdds)
		r.Get("/arbitrage", handler.GetArbitrage)
		r.Get("/player-props", handler.GetPlayerProps)
		r.Get("/prediction-history", handler.GetPredictionHistory)

		r.Post("/auth/google", handler.GoogleAuth)
		r.Put("/user/update", handler.UpdateUserProfile)

		r.Get("/discussions", handler.GetDiscussions)
		r.Post("/discussions", handler.CreateDiscussion)
	})

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ OpenBet API listening on %s\n", cfg.Server.Addr)
		fmt.Println("  Endpoints:")
		fmt.Println("    GET  /health")
		fmt.Println("    GET  /api/historical-data")
		fmt.Println("    GET  /api/live-nba-odds")
		fmt.Println("    GET  /api/arbitrage")
		fmt.Println("    GET  /api/player-props")
		fmt.Println("    GET  /api/prediction-history")
		fmt.Println("    POST /api/auth/google")
		fmt.Println("    PUT  /api/user/update")
		fmt.Println("    GET  /api/discussions")
		fmt.Println("    POST /api/discussions")

		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)

		stopPoller()

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("⚠️  Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("❌ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Shutdown complete")
}
