package convert

import (
	"context"
	"time"

	"github.com/msto63/bookfab/internal/workspace"
	"github.com/msto63/bookfab/pkg/core/logging"
)

// Simulated pretends to synthesize: it waits for the configured delay and
// always succeeds. Only context cancellation (shutdown) ends a job early.
type Simulated struct {
	delay  time.Duration
	logger *logging.Logger
	now    func() time.Time
}

// NewSimulated creates the simulated converter
func NewSimulated(cfg Config, logger *logging.Logger) *Simulated {
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulated{delay: cfg.Delay, logger: logger, now: time.Now}
}

// Name implements Synthesizer
func (s *Simulated) Name() string { return "simulated" }

// Delay returns the simulated processing time
func (s *Simulated) Delay() time.Duration { return s.delay }

// Convert implements Synthesizer
func (s *Simulated) Convert(ctx context.Context, job workspace.Job) (Result, error) {
	start := s.now()
	s.logger.Debug("simulating conversion", "job", job.ID, "delay", s.delay.String())

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	end := s.now()
	return Result{
		JobID:    job.ID,
		Engine:   s.Name(),
		Elapsed:  end.Sub(start),
		Finished: end,
	}, nil
}
