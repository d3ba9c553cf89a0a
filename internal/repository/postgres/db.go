package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the "postgres" driver

	"confcompanion/internal/metrics"
)

// Config holds PostgreSQL connection configuration.
type Config struct {
	URL          string
	Driver       string // "postgres" (lib/pq) or "pgx"
	MaxOpenConns int
	MaxIdleConns int
}

// Open opens a pooled connection and pings it.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	driver := cfg.Driver
	switch driver {
	case "":
		driver = "postgres"
	case "postgres", "pgx":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	} else {
		db.SetMaxOpenConns(10)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	} else {
		db.SetMaxIdleConns(2)
	}
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// StartPoolMetrics samples pool statistics until ctx is done.
func StartPoolMetrics(ctx context.Context, db *sqlx.DB, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.DBOpenConnections.Set(float64(db.Stats().OpenConnections))
			}
		}
	}()
}
