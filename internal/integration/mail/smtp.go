// Package mail delivers notify.Message values over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/colonyops/tasker/internal/core/notify"
)

// Config holds SMTP connection settings. Username and Password are expected
// to come from the environment.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

var (
	errNoHost        = errors.New("smtp host is not configured")
	errNoCredentials = errors.New("smtp credentials are not configured (set TASKER_SMTP_USERNAME and TASKER_SMTP_PASSWORD)")
	errNoAddress     = errors.New("sender and recipient must both be set")
)

// SMTPNotifier implements notify.Notifier with authenticated SMTP over
// STARTTLS.
type SMTPNotifier struct {
	cfg Config
}

// NewSMTPNotifier creates a notifier. Configuration problems are reported on
// Send so that the rest of the program keeps working without mail set up.
func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Send delivers msg. Every failure wraps notify.ErrDelivery.
func (n *SMTPNotifier) Send(ctx context.Context, msg notify.Message) error {
	if err := n.check(msg); err != nil {
		return fmt.Errorf("%w: %w", notify.ErrDelivery, err)
	}

	m, err := buildMessage(msg)
	if err != nil {
		return fmt.Errorf("%w: %w", notify.ErrDelivery, err)
	}

	opts := []gomail.Option{
		gomail.WithPort(n.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.Username),
		gomail.WithPassword(n.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if n.cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(n.cfg.Timeout))
	}

	client, err := gomail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("%w: create smtp client: %w", notify.ErrDelivery, err)
	}

	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: send: %w", notify.ErrDelivery, err)
	}

	return nil
}

func (n *SMTPNotifier) check(msg notify.Message) error {
	if n.cfg.Host == "" {
		return errNoHost
	}
	if n.cfg.Username == "" || n.cfg.Password == "" {
		return errNoCredentials
	}
	if msg.From == "" || msg.To == "" {
		return errNoAddress
	}
	return nil
}

func buildMessage(msg notify.Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("set sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}
