// Package worker runs periodic background jobs for the lifetime of the process.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Runner struct {
	jobs   []Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(jobs ...Job) *Runner {
	return &Runner{jobs: jobs}
}

// Start launches one goroutine per job. Jobs run once immediately and then on
// every tick; a slow run delays the next tick instead of overlapping it.
func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, job := range r.jobs {
		if job.Interval <= 0 {
			slog.Warn("worker disabled", "job", job.Name)
			continue
		}
		r.wg.Add(1)
		go func(job Job) {
			defer r.wg.Done()
			loop(ctx, job)
		}(job)
	}
}

// Stop cancels running jobs and waits for them until ctx expires.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	slog.Info("worker started", "job", job.Name, "interval", job.Interval.String())
	runOnce(ctx, job)

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopped", "job", job.Name)
			return
		case <-ticker.C:
			runOnce(ctx, job)
		}
	}
}

func runOnce(ctx context.Context, job Job) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("worker panic recovered", "job", job.Name, "panic", rec)
		}
	}()

	if err := job.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("worker run failed", "job", job.Name, "error", err.Error())
	}
}
