// Package notify defines the outbound message contract used for reminders.
package notify

import (
	"context"
	"errors"
)

// ErrDelivery is returned when a message could not be delivered.
var ErrDelivery = errors.New("notification delivery failed")

// Message is a single outbound plain-text message.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Notifier delivers messages over some transport.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, msg Message) error

// Send calls f(ctx, msg).
func (f NotifierFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
