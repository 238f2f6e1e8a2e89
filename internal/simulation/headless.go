package simulation

import (
	"context"
	"fmt"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
)

// Runner drives a flock without a window, one Update per frame on the
// configured world size.
type Runner struct {
	cfg    *Config
	flock  *flock.Flock
	logger golog.Logger
	frame  uint64

	// LogEvery is the number of frames between two stats lines, 0 disables them.
	LogEvery int
}

func NewRunner(cfg *Config, f *flock.Flock, logger golog.Logger) *Runner {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Runner{
		cfg:      cfg,
		flock:    f,
		logger:   logger,
		LogEvery: cfg.TicksPerSecond,
	}
}

// Flock returns the flock being driven.
func (r *Runner) Flock() *flock.Flock {
	return r.flock
}

// Run simulates frames frames and returns the final stats.
// It stops early with ctx's error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, frames int) (Stats, error) {
	r.logger.Infof("Headless run: %d boids, %d frames, world %vx%v",
		r.flock.Len(), frames, r.cfg.WorldWidth, r.cfg.WorldHeight)

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return r.Stats(), fmt.Errorf("headless run interrupted at frame %d: %w", r.frame, err)
		}
		r.flock.Update(r.cfg.WorldWidth, r.cfg.WorldHeight)
		r.frame++
		if r.LogEvery > 0 && r.frame%uint64(r.LogEvery) == 0 {
			r.logger.Info(r.Stats().String())
		}
	}

	st := r.Stats()
	r.logger.Infof("Headless run done, %s", st)
	return st, nil
}

// Stats summarises the flock at the current frame.
func (r *Runner) Stats() Stats {
	return ComputeStats(r.frame, r.flock.Agents())
}
