package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Database holds the database connection pool and provides access to repositories
type Database struct {
	Pool   *pgxpool.Pool
	tables Tables

	// Repositories
	GameLogs       *GameLogRepository
	PlayerGameLogs *PlayerGameLogRepository
	BoxScores      *BoxScoreRepository
}

// Tables names the destination tables. All three live in one schema; every
// successful load replaces a table's full contents.
type Tables struct {
	Schema         string
	GameLogs       string
	PlayerGameLogs string
	BoxScores      string
}

// NewDatabase creates a new database connection pool and initializes repositories
func NewDatabase(ctx context.Context, dsn string, tables Tables) (*Database, error) {
	// Configure connection pool
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Set pool configuration
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Create connection pool
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("host", poolConfig.ConnConfig.Host).
		Str("database", poolConfig.ConnConfig.Database).
		Str("schema", tables.Schema).
		Msg("Successfully connected to database")

	// Initialize database with repositories
	db := &Database{
		Pool:   pool,
		tables: tables,
	}

	// Initialize repositories
	db.GameLogs = &GameLogRepository{db: db}
	db.PlayerGameLogs = &PlayerGameLogRepository{db: db}
	db.BoxScores = &BoxScoreRepository{db: db}

	return db, nil
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		log.Info().Msg("Database connection pool closed")
	}
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	return nil
}

// PoolStats returns database pool statistics
func (db *Database) PoolStats() map[string]interface{} {
	stat := db.Pool.Stat()
	return map[string]interface{}{
		"total_conns":    stat.TotalConns(),
		"acquired_conns": stat.AcquiredConns(),
		"idle_conns":     stat.IdleConns(),
		"max_conns":      stat.MaxConns(),
	}
}
