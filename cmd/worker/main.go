// Command worker runs the full ingestion refresh: games, player game logs,
// then box scores. By default it refreshes once and exits; with the
// scheduler enabled it keeps running and refreshes on a cron schedule,
// serving Prometheus metrics until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nuggets_v2/ingestion/internal/cache"
	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/config"
	"nuggets_v2/ingestion/internal/metrics"
	"nuggets_v2/ingestion/internal/pipeline"
	"nuggets_v2/ingestion/internal/repository"
	"nuggets_v2/ingestion/internal/scheduler"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.AppEnv).
		Str("season", cfg.Season).
		Bool("scheduler", cfg.EnableScheduler).
		Msg("Starting NBA ingestion worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewDatabase(ctx, cfg.DatabaseDSN(), repository.Tables{
		Schema:         cfg.DatabaseSchema,
		GameLogs:       cfg.GamesTable,
		PlayerGameLogs: cfg.PlayerGameLogTable,
		BoxScores:      cfg.BoxScoresTable,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	api := client.NewClient(cfg.NBAStatsBaseURL, cfg.NBAStatsTimeout)

	var respCache pipeline.ResponseCache
	if cfg.CacheEnabled {
		rc, err := cache.NewRedisCache(ctx, cache.Config{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without cache")
		} else {
			defer rc.Close()
			respCache = rc
		}
	}

	refresh := func(ctx context.Context) error {
		return fullRefresh(ctx, cfg, api, db, respCache)
	}

	if !cfg.EnableScheduler {
		err := refresh(ctx)
		if cfg.PushgatewayURL != "" {
			if pushErr := metrics.Push(cfg.PushgatewayURL, "worker"); pushErr != nil {
				log.Warn().Err(pushErr).Msg("Failed to push metrics")
			}
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Full refresh failed")
		}
		log.Info().Msg("Full refresh complete")
		return
	}

	if cfg.EnableMetrics {
		go startMetricsServer(cfg.MetricsPort)
	}

	sched := scheduler.New(cfg.RefreshCron, refresh)
	if err := sched.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	<-ctx.Done()
	log.Info().Msg("Received shutdown signal, gracefully shutting down...")

	sched.Stop()
	log.Info().Msg("Worker shutdown complete")
}

func setupLogger(cfg *config.Config) {
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// startMetricsServer serves Prometheus metrics and a health endpoint
func startMetricsServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	addr := fmt.Sprintf(":%d", port)
	log.Info().Str("addr", addr).Msg("Starting metrics server")

	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Metrics server failed")
	}
}
