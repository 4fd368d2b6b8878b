// Package scheduler runs the full ingestion refresh on a cron schedule.
// Used only by the worker; the one-shot commands run their pipeline once
// and exit.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// RefreshFunc performs one full ingestion refresh
type RefreshFunc func(ctx context.Context) error

// Scheduler triggers the refresh on a cron expression. Overlapping runs are
// skipped: a tick that arrives while a refresh is still in flight does
// nothing.
type Scheduler struct {
	spec    string
	refresh RefreshFunc
	cron    *cron.Cron
	entryID cron.EntryID
	started bool
	running atomic.Bool
}

// New creates a scheduler for the given cron expression
func New(spec string, refresh RefreshFunc) *Scheduler {
	return &Scheduler{
		spec:    spec,
		refresh: refresh,
		cron:    cron.New(),
	}
}

// Start schedules the refresh job and starts the cron runner. Starting an
// already started scheduler is an error.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.started {
		return fmt.Errorf("scheduler already started")
	}

	entryID, err := s.cron.AddFunc(s.spec, func() {
		if !s.running.CompareAndSwap(false, true) {
			log.Warn().Msg("Previous refresh still running, skipping this tick")
			return
		}
		defer s.running.Store(false)

		started := time.Now()
		log.Info().Msg("Scheduled refresh starting")

		if err := s.refresh(ctx); err != nil {
			log.Error().Err(err).Dur("duration", time.Since(started)).Msg("Scheduled refresh failed")
			return
		}

		log.Info().Dur("duration", time.Since(started)).Msg("Scheduled refresh complete")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	s.entryID = entryID
	s.started = true
	s.cron.Start()

	log.Info().
		Str("schedule", s.spec).
		Time("next_run", s.cron.Entry(entryID).Next).
		Msg("Refresh scheduled")

	return nil
}

// Stop stops the cron runner and waits for an in-flight refresh to finish
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}

	log.Info().Msg("Stopping scheduler...")
	<-s.cron.Stop().Done()
	s.started = false
	log.Info().Msg("Scheduler stopped")
}
