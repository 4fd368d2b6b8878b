// Package pipeline implements the three raw-stat load pipelines: fetch from
// the stats API, reshape into warehouse rows, and replace-write the
// destination table. The box score pipeline drives one fetch per game and
// isolates per-game failures; the season pipelines are single-fetch.
package pipeline

import "context"

// Throttle paces stats API requests. A rate.Limiter satisfies it in
// production; tests substitute a no-op.
type Throttle interface {
	Wait(ctx context.Context) error
}

// Result summarizes one pipeline run.
type Result struct {
	Items    int   // work items driven (1 for season-level fetches)
	Failures int   // items skipped after a fetch or reshape failure
	Rows     int64 // rows written to the destination table
}
