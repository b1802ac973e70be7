// Package tasker wires the task, reminder and quote workflows together.
package tasker

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/tasker/internal/core/config"
	"github.com/colonyops/tasker/internal/core/notify"
	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/internal/quote"
)

// App is the central entry point for all tasker operations.
// The menu and the scheduler consume App instead of raw dependencies.
type App struct {
	Tasks     *TaskService
	Reminders *ReminderService
	Quotes    quote.Fetcher
	Config    *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	cfg *config.Config,
	store task.Store,
	notifier notify.Notifier,
	quotes quote.Fetcher,
	log zerolog.Logger,
) *App {
	return &App{
		Tasks: NewTaskService(store, log),
		Reminders: NewReminderService(store, notifier, ReminderOptions{
			From:     cfg.Reminder.From,
			To:       cfg.Reminder.To,
			Subject:  cfg.Reminder.Subject,
			Template: cfg.Reminder.Template,
		}, log),
		Quotes: quotes,
		Config: cfg,
	}
}
