package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := New("not a cron spec", func(ctx context.Context) error { return nil })
	assert.Error(t, s.Start(context.Background()))
}

func TestStartRejectsDoubleStart(t *testing.T) {
	s := New("0 7 * * *", func(ctx context.Context) error { return nil })
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Error(t, s.Start(context.Background()))
}

func TestScheduledRefreshRuns(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := New("@every 10ms", func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh never ran")
	}
}

func TestStopWithoutStartIsSafe(t *testing.T) {
	s := New("0 7 * * *", func(ctx context.Context) error { return nil })
	s.Stop()
}
