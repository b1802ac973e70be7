package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasker/internal/commands"
	"github.com/colonyops/tasker/internal/core/config"
	"github.com/colonyops/tasker/internal/core/logging"
	"github.com/colonyops/tasker/internal/core/styles"
	"github.com/colonyops/tasker/internal/integration/mail"
	"github.com/colonyops/tasker/internal/quote"
	"github.com/colonyops/tasker/internal/scheduler"
	"github.com/colonyops/tasker/internal/store/jsonfile"
	"github.com/colonyops/tasker/internal/tasker"
	"github.com/colonyops/tasker/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		logCloser func()
		taskerApp = &tasker.App{}
		reminders *scheduler.Scheduler
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tasker",
		Usage:     "Manage a personal task list with daily email reminders",
		UsageText: "tasker [global options]",
		Description: `Tasker keeps a small list of tasks in a JSON file and walks you through
adding, listing and completing them from an interactive menu.

While the menu is open, a reminder email listing every pending task is sent
each day at 08:00 local time. SMTP credentials are read from
TASKER_SMTP_USERNAME and TASKER_SMTP_PASSWORD.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKER_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TASKER_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Log to a file so output never interleaves with the menu
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			store := jsonfile.NewTaskStore(cfg.TasksFile, log.Logger)

			quotes := quote.NewScraper(quote.Config{
				URL:      cfg.Quote.URL,
				Selector: cfg.Quote.Selector,
				Timeout:  cfg.Quote.Timeout,
			})

			notifier := mail.NewSMTPNotifier(mail.Config{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: cfg.SMTP.Password,
				Timeout:  cfg.SMTP.Timeout,
			})

			if !cfg.MailConfigured() {
				log.Warn().Msg("smtp credentials or addresses missing, reminders will fail until configured")
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*taskerApp = *tasker.NewApp(cfg, store, notifier, quotes, log.Logger)

			// Start the daily reminder; it lives as long as the process
			reminders, err = scheduler.New(cfg.Reminder.Schedule, taskerApp.Reminders.RunScheduled, log.Logger)
			if err != nil {
				return ctx, fmt.Errorf("create scheduler: %w", err)
			}
			reminders.Start()

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Stop scheduler, letting an in-flight reminder finish briefly
			if reminders != nil {
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := reminders.Stop(stopCtx); err != nil {
					log.Warn().Err(err).Msg("scheduler did not stop cleanly")
				}
				cancel()
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags, taskerApp)

	// The menu is the only mode of operation
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unexpected argument %q. Run 'tasker --help' for usage", c.Args().First())
		}
		return menuCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}
