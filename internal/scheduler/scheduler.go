package scheduler

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

// Scheduler runs a named job once immediately and then on a fixed period.
// All runs happen on the calling goroutine, so passes never overlap.
type Scheduler struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error
	log      *slog.Logger
}

func New(name string, interval time.Duration, job func(ctx context.Context) error, log *slog.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
		log:      log.With("component", "scheduler", "job", name),
	}
}

// Run blocks until ctx is cancelled. Job errors are logged, never fatal; the
// next tick is the only retry mechanism.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler started", "interval", s.interval)
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.job(ctx); err != nil {
		s.log.Error("scheduled job failed", "error", err)
	}
}
