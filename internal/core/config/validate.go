package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/robfig/cron/v3"

	"github.com/colonyops/tasker/internal/core/styles"
	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/pkg/tmpl"
)

// ReminderTemplateData defines the fields available to reminder.template.
type ReminderTemplateData struct {
	Count int         // number of pending tasks
	Tasks []task.Task // pending tasks in list order
}

// Validate checks that the configuration is usable. Field problems are
// returned together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tasks_file", c.TasksFile, notEmpty),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("quote.url", c.Quote.URL, httpURL),
		criterio.Run("quote.selector", c.Quote.Selector, notEmpty),
		field("quote.timeout", positiveDuration(c.Quote.Timeout)),
		criterio.Run("reminder.schedule", c.Reminder.Schedule, cronSpec),
		criterio.Run("reminder.template", c.Reminder.Template, reminderTemplate),
		field("smtp.port", tcpPort(c.SMTP.Port)),
		field("smtp.timeout", positiveDuration(c.SMTP.Timeout)),
	)
}

// field attaches a non-string check result to its config key.
func field(name string, err error) error {
	if err == nil {
		return nil
	}
	return criterio.NewFieldErrors(name, err)
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func knownTheme(name string) error {
	names := styles.ThemeNames()
	if !slices.Contains(names, name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(names, ", "))
	}
	return nil
}

func httpURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host: %q", raw)
	}
	return nil
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}

func tcpPort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", p)
	}
	return nil
}

func cronSpec(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return nil
}

// sampleReminderData is used for template syntax checking. Output is
// discarded; only parse and execution errors matter.
var sampleReminderData = ReminderTemplateData{
	Count: 2,
	Tasks: []task.Task{
		task.New("Write report", "2024-06-01"),
		task.New("Review PR", "2024-06-02"),
	},
}

func reminderTemplate(s string) error {
	if _, err := tmpl.Render(s, sampleReminderData); err != nil {
		return fmt.Errorf("template error: %w", err)
	}
	return nil
}
