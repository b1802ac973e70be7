// Package scheduler runs a single job on a cron schedule for the lifetime
// of the process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is invoked on every firing. The context is cancelled when the
// scheduler is stopped.
type Job func(ctx context.Context)

// Scheduler owns one recurring job. Firings that happen while the process is
// not running are not replayed, and a firing is skipped if the previous run
// is still going.
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	spec     string
	log      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// New parses spec (standard 5-field cron syntax or a descriptor such as
// "@daily") and registers job. The scheduler does nothing until Start.
func New(spec string, job Job, log zerolog.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}

	log = log.With().Str("component", "scheduler").Str("schedule", spec).Logger()
	logger := cronLogger{log: log}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.Local),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		schedule: schedule,
		spec:     spec,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}

	s.cron.Schedule(schedule, cron.FuncJob(func() {
		job(s.ctx)
	}))

	return s, nil
}

// Start begins firing in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Time("next", s.NextAfter(time.Now())).Msg("scheduler started")
}

// Stop prevents further firings and waits for a running job to finish. If
// ctx ends first, the job's context is cancelled and ctx.Err is returned.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}
}

// NextAfter returns the first firing time after t.
func (s *Scheduler) NextAfter(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Spec returns the schedule expression.
func (s *Scheduler) Spec() string {
	return s.spec
}

// cronLogger adapts zerolog to cron.Logger. Routine cron chatter is logged
// at debug level.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
