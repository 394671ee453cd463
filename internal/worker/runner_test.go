//go:build unit

package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"travel-deals/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunsJobUntilStopped(t *testing.T) {
	var runs atomic.Int32
	r := NewRunner(Job{
		Name:     "count",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	r.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestRunner_SurvivesErrorsAndPanics(t *testing.T) {
	var runs atomic.Int32
	r := NewRunner(Job{
		Name:     "flaky",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			n := runs.Add(1)
			if n == 1 {
				panic("boom")
			}
			return errors.New("still failing")
		},
	})

	r.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	require.NoError(t, r.Stop(context.Background()))
}

func TestRunner_SkipsDisabledJobs(t *testing.T) {
	called := false
	r := NewRunner(Job{Name: "off", Interval: 0, Run: func(context.Context) error {
		called = true
		return nil
	}})

	r.Start()
	require.NoError(t, r.Stop(context.Background()))
	assert.False(t, called)
}

type stubRelay struct{ stats commands.RelayStats }

func (s stubRelay) RelayPending(context.Context) (commands.RelayStats, error) { return s.stats, nil }

type stubExpiry struct {
	n   int
	err error
}

func (s stubExpiry) ExpireStale(context.Context) (int, error) { return s.n, s.err }

func TestJobs(t *testing.T) {
	relay := OutboxRelayJob(stubRelay{stats: commands.RelayStats{Sent: 2}}, time.Second)
	assert.Equal(t, "outbox-relay", relay.Name)
	assert.NoError(t, relay.Run(context.Background()))

	sweepErr := errors.New("db down")
	expiry := OrderExpiryJob(stubExpiry{n: 1, err: sweepErr}, time.Minute)
	assert.Equal(t, time.Minute, expiry.Interval)
	assert.ErrorIs(t, expiry.Run(context.Background()), sweepErr)
}
