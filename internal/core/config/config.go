// Package config handles configuration loading and validation for tasker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasker/internal/core/styles"
)

// Environment variables that override file configuration. Credentials are
// only ever read from the environment or, for the username, the file.
const (
	EnvTasksFile    = "TASKER_TASKS_FILE"
	EnvMailFrom     = "TASKER_MAIL_FROM"
	EnvMailTo       = "TASKER_MAIL_TO"
	EnvSMTPHost     = "TASKER_SMTP_HOST"
	EnvSMTPPort     = "TASKER_SMTP_PORT"
	EnvSMTPUsername = "TASKER_SMTP_USERNAME"
	EnvSMTPPassword = "TASKER_SMTP_PASSWORD"
)

// DefaultReminderTemplate renders the reminder body as a count header
// followed by one line per pending task.
const DefaultReminderTemplate = `You have {{ .Count }} pending tasks:

{{ range $i, $t := .Tasks }}{{ if $i }}
{{ end }}- {{ $t.Title }} (Due: {{ $t.DueDate }}){{ end }}`

// Config holds the application configuration.
type Config struct {
	TasksFile string         `yaml:"tasks_file"`
	Theme     string         `yaml:"theme"`
	Quote     QuoteConfig    `yaml:"quote"`
	Reminder  ReminderConfig `yaml:"reminder"`
	SMTP      SMTPConfig     `yaml:"smtp"`
}

// QuoteConfig controls the motivational quote source.
type QuoteConfig struct {
	URL      string        `yaml:"url"`
	Selector string        `yaml:"selector"` // CSS selector of the quote element
	Timeout  time.Duration `yaml:"timeout"`
}

// ReminderConfig controls the daily reminder email.
type ReminderConfig struct {
	Schedule string `yaml:"schedule"` // standard 5-field cron spec, local time
	Subject  string `yaml:"subject"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Template string `yaml:"template"` // text/template for the body
}

// SMTPConfig holds mail transport settings.
type SMTPConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"-"` // environment only
	Timeout  time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TasksFile: DefaultTasksFile(),
		Theme:     styles.DefaultTheme,
		Quote: QuoteConfig{
			URL:      "https://www.brainyquote.com/quote_of_the_day",
			Selector: ".b-qt",
			Timeout:  5 * time.Second,
		},
		Reminder: ReminderConfig{
			Schedule: "0 8 * * *",
			Subject:  "Daily Task Reminder",
			Template: DefaultReminderTemplate,
		},
		SMTP: SMTPConfig{
			Host:    "smtp.gmail.com",
			Port:    587,
			Timeout: 15 * time.Second,
		},
	}
}

// DefaultTasksFile returns tasks.json next to the running executable, or in
// the working directory if the executable path cannot be resolved.
func DefaultTasksFile() string {
	exe, err := os.Executable()
	if err != nil {
		return "tasks.json"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "tasks.json")
}

// Load reads configuration from the given path and applies environment
// overrides. If configPath is empty or doesn't exist, defaults are used.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv overrides fields from environment variables that are set.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvTasksFile:    &c.TasksFile,
		EnvMailFrom:     &c.Reminder.From,
		EnvMailTo:       &c.Reminder.To,
		EnvSMTPHost:     &c.SMTP.Host,
		EnvSMTPUsername: &c.SMTP.Username,
		EnvSMTPPassword: &c.SMTP.Password,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvSMTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSMTPPort, err)
		}
		c.SMTP.Port = port
	}

	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TasksFile == "" {
		c.TasksFile = defaults.TasksFile
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Quote.URL == "" {
		c.Quote.URL = defaults.Quote.URL
	}
	if c.Quote.Selector == "" {
		c.Quote.Selector = defaults.Quote.Selector
	}
	if c.Quote.Timeout == 0 {
		c.Quote.Timeout = defaults.Quote.Timeout
	}
	if c.Reminder.Schedule == "" {
		c.Reminder.Schedule = defaults.Reminder.Schedule
	}
	if c.Reminder.Subject == "" {
		c.Reminder.Subject = defaults.Reminder.Subject
	}
	if c.Reminder.Template == "" {
		c.Reminder.Template = defaults.Reminder.Template
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = defaults.SMTP.Port
	}
	if c.SMTP.Timeout == 0 {
		c.SMTP.Timeout = defaults.SMTP.Timeout
	}
}

// MailConfigured reports whether enough settings are present to attempt
// sending a reminder.
func (c *Config) MailConfigured() bool {
	return c.SMTP.Host != "" &&
		c.SMTP.Username != "" &&
		c.SMTP.Password != "" &&
		c.Reminder.From != "" &&
		c.Reminder.To != ""
}
