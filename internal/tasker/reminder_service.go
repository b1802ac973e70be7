package tasker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasker/internal/core/config"
	"github.com/colonyops/tasker/internal/core/logging"
	"github.com/colonyops/tasker/internal/core/notify"
	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/pkg/tmpl"
)

// ReminderOptions holds the fixed addressing and body template of reminders.
type ReminderOptions struct {
	From     string
	To       string
	Subject  string
	Template string
}

// ReminderResult describes the outcome of a reminder run.
type ReminderResult struct {
	Pending int  // pending tasks found
	Sent    bool // whether the notifier accepted the message
}

// Skipped reports whether the run found nothing to remind about.
func (r ReminderResult) Skipped() bool {
	return r.Pending == 0
}

// ReminderService composes and sends the pending-task digest. It only ever
// reads the task store.
type ReminderService struct {
	store    task.Store
	notifier notify.Notifier
	opts     ReminderOptions
	log      zerolog.Logger
}

// NewReminderService creates a new ReminderService. An empty template falls
// back to config.DefaultReminderTemplate.
func NewReminderService(store task.Store, notifier notify.Notifier, opts ReminderOptions, log zerolog.Logger) *ReminderService {
	if opts.Template == "" {
		opts.Template = config.DefaultReminderTemplate
	}
	return &ReminderService{
		store:    store,
		notifier: notifier,
		opts:     opts,
		log:      log.With().Str("component", "reminder-service").Logger(),
	}
}

// Send loads pending tasks and, if there are any, delivers the digest.
// With nothing pending the notifier is not called. Delivery errors wrap
// notify.ErrDelivery.
func (s *ReminderService) Send(ctx context.Context) (ReminderResult, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return ReminderResult{}, fmt.Errorf("load tasks: %w", err)
	}

	pending := c.Pending()
	result := ReminderResult{Pending: len(pending)}

	if result.Skipped() {
		s.log.Info().Ctx(ctx).Msg("no pending tasks, reminder skipped")
		return result, nil
	}

	msg, err := s.Compose(pending)
	if err != nil {
		return result, err
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		return result, fmt.Errorf("send reminder: %w", err)
	}

	result.Sent = true
	s.log.Info().Ctx(ctx).Int("pending", result.Pending).Str("to", msg.To).Msg("reminder sent")
	return result, nil
}

// RunScheduled is the scheduler entry point. It sends the reminder and logs
// the outcome; nothing is returned because no caller is waiting.
func (s *ReminderService) RunScheduled(ctx context.Context) {
	ctx = logging.WithTrigger(ctx, logging.TriggerSchedule)

	if _, err := s.Send(ctx); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("scheduled reminder failed")
	}
}

// Compose renders the reminder message for the given pending tasks.
func (s *ReminderService) Compose(pending []task.Task) (notify.Message, error) {
	body, err := tmpl.Render(s.opts.Template, config.ReminderTemplateData{
		Count: len(pending),
		Tasks: pending,
	})
	if err != nil {
		return notify.Message{}, fmt.Errorf("render reminder: %w", err)
	}

	return notify.Message{
		From:    s.opts.From,
		To:      s.opts.To,
		Subject: s.opts.Subject,
		Body:    body,
	}, nil
}
