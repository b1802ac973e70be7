// Package menu implements the interactive task manager loop.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasker/internal/core/logging"
	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/internal/printer"
	"github.com/colonyops/tasker/internal/tasker"
)

// Menu drives the main menu. Every action returns to the main menu except
// Exit, and action failures are printed rather than returned.
type Menu struct {
	app      *tasker.App
	prompter Prompter
	out      *printer.Printer
	log      zerolog.Logger
}

// New creates a Menu writing its output to out. log is expected to already
// carry a component field.
func New(app *tasker.App, prompter Prompter, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{
		app:      app,
		prompter: prompter,
		out:      printer.New(out),
		log:      log,
	}
}

// Run loops until the user exits. It returns nil on Exit, on an aborted
// main menu prompt, and when ctx is cancelled. Only a prompt failure other
// than an abort is returned as an error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			m.farewell()
			return nil
		}

		m.header(ctx)

		action, err := m.prompter.Action(ctx)
		if err != nil {
			if errors.Is(err, ErrAborted) || ctx.Err() != nil {
				m.farewell()
				return nil
			}
			return fmt.Errorf("prompt action: %w", err)
		}

		if action == ActionExit {
			m.farewell()
			return nil
		}

		if err := m.dispatch(ctx, action); err != nil {
			if errors.Is(err, ErrAborted) {
				m.out.Mutedf("Cancelled.")
				continue
			}
			m.log.Error().Err(err).Str("action", string(action)).Msg("action failed")
			m.out.Errorf("Error: %v", err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, action Action) error {
	switch action {
	case ActionAdd:
		return m.addTask(ctx)
	case ActionList:
		return m.listTasks(ctx)
	case ActionDone:
		return m.markDone(ctx)
	case ActionEmail:
		m.sendReminder(ctx)
		return nil
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// header prints the title and a best-effort quote.
func (m *Menu) header(ctx context.Context) {
	m.out.Title("Task Manager")

	if m.app.Quotes == nil {
		return
	}

	q, err := m.app.Quotes.Fetch(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("quote unavailable")
		m.out.Mutedf("(no motivational quote available)")
		return
	}
	m.out.Quote(q)
}

func (m *Menu) addTask(ctx context.Context) error {
	title, dueDate, err := m.prompter.NewTask(ctx)
	if err != nil {
		return err
	}

	if _, err := m.app.Tasks.Add(ctx, title, dueDate); err != nil {
		return err
	}

	m.out.Successf("Task added!")
	return nil
}

func (m *Menu) listTasks(ctx context.Context) error {
	tasks, err := m.app.Tasks.List(ctx)
	if err != nil {
		return err
	}

	m.out.Section("Your Tasks:")
	for _, line := range tasks.Lines() {
		m.out.Printf("%s", line)
	}
	return nil
}

func (m *Menu) markDone(ctx context.Context) error {
	tasks, err := m.app.Tasks.List(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		m.out.Warnf("No tasks to mark as done.")
		return nil
	}

	choices := make([]Choice, 0, len(tasks))
	for i, t := range tasks {
		choices = append(choices, Choice{Label: task.FormatChoice(i+1, t), Position: i + 1})
	}

	pos, err := m.prompter.SelectTask(ctx, choices)
	if err != nil {
		return err
	}

	if err := m.app.Tasks.MarkDone(ctx, pos); err != nil {
		return err
	}

	m.out.Successf("Task marked as done!")
	return nil
}

// sendReminder runs the reminder workflow and reports its outcome. Failures
// are reported, never returned.
func (m *Menu) sendReminder(ctx context.Context) {
	ctx = logging.WithTrigger(ctx, logging.TriggerMenu)

	result, err := m.app.Reminders.Send(ctx)
	switch {
	case err != nil:
		m.log.Error().Ctx(ctx).Err(err).Msg("reminder failed")
		m.out.Errorf("Error sending email: %v", err)
	case result.Skipped():
		m.out.Warnf("No pending tasks to remind.")
	default:
		m.out.Successf("Email reminder sent!")
	}
}

func (m *Menu) farewell() {
	m.out.Successf("Goodbye!")
}
