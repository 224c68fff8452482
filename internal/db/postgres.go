package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Postgres implements Store against PostgreSQL
type Postgres struct {
	db *sql.DB
}

// Ensure Postgres implements Store
var _ Store = (*Postgres)(nil)

// NewPostgres opens a connection pool and verifies connectivity
func NewPostgres(dsn string) (*Postgres, error) {
	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(5)
	database.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{db: database}, nil
}

// Ping checks database connectivity
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	return p.db.Close()
}
