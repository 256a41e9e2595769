package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler runs a job repeatedly on a single goroutine.
// The next run is computed from the schedule after the previous run returns,
// so runs never overlap and a slow run does not shorten the pause.
type PollScheduler struct {
	schedule cron.Schedule
	job      func(ctx context.Context)
	logger   *logrus.Entry
}

// NewPollScheduler parses spec with the standard cron parser
// ("@every 10m", "*/10 * * * *", ...).
func NewPollScheduler(spec string, job func(ctx context.Context), logger *logrus.Entry) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollScheduler{
		schedule: schedule,
		job:      job,
		logger:   logger.WithField("schedule", spec),
	}, nil
}

// Run executes the job immediately and then after every schedule tick
// until ctx is cancelled.
func (s *PollScheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting poll scheduler...")
	for {
		s.job(ctx)

		next := s.schedule.Next(time.Now())
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Waiting for next poll")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Poll scheduler stopped.")
			return ctx.Err()
		case <-timer.C:
		}
	}
}
