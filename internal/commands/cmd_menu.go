package commands

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/core/logging"
	"github.com/colonyops/tasker/internal/menu"
	"github.com/colonyops/tasker/internal/tasker"
)

type MenuCmd struct {
	flags *Flags
	app   *tasker.App

	// overridable in tests
	prompter menu.Prompter
	out      io.Writer
}

// NewMenuCmd creates a new menu command
func NewMenuCmd(flags *Flags, app *tasker.App) *MenuCmd {
	return &MenuCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the interactive menu. Exported for use as default command.
func (cmd *MenuCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *MenuCmd) run(ctx context.Context, _ *cli.Command) error {
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}

	prompter := cmd.prompter
	if prompter == nil {
		prompter = menu.NewHuhPrompter(os.Stdin, out)
	}

	// Unreadable task files are reported per action by the menu
	pending, err := cmd.app.Tasks.PendingCount(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not count pending tasks")
	}

	log.Debug().
		Str("tasks_file", cmd.app.Config.TasksFile).
		Int("pending", pending).
		Bool("mail_configured", cmd.app.Config.MailConfigured()).
		Msg("starting menu")

	return menu.New(cmd.app, prompter, out, logging.Component("menu")).Run(ctx)
}
