// Package scheduler runs the periodic jobs that drive time-based
// progression: call dispatch, stuck-call reconciliation, CV follow-ups,
// stale-application closing, and mailbox polling.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type jobSpec struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler drives a fixed set of periodic jobs. Each job runs on its own
// goroutine with its own ticker; a job never overlaps with itself because
// its loop is sequential, and missed ticks coalesce into one run.
type Scheduler struct {
	jobs   []jobSpec
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *slog.Logger
}

// New creates an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{
		logger: slog.Default().With("component", "scheduler"),
	}
}

// Add registers a job. Must be called before Start.
func (s *Scheduler) Add(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, jobSpec{name: name, interval: interval, run: run})
}

// Start launches every registered job. Each runs once immediately, then on
// its interval.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, job)
		s.logger.Info("job scheduled", "job", job.name, "interval", job.interval)
	}
}

// Stop signals every job loop to exit and waits for in-flight runs to
// finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, job jobSpec) {
	defer s.wg.Done()

	s.runOnce(ctx, job)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job jobSpec) {
	start := time.Now()
	if err := job.run(ctx); err != nil {
		s.logger.Error("job failed", "job", job.name, "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Debug("job finished", "job", job.name, "duration", time.Since(start))
}
