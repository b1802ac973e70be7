// Package testutil provides fakes shared by package tests.
package testutil

import (
	"context"
	"sync"

	"github.com/colonyops/tasker/internal/core/notify"
)

// RecordingNotifier records every message it is asked to send and returns
// Err from Send.
type RecordingNotifier struct {
	Err error

	mu   sync.Mutex
	sent []notify.Message
}

// Send records msg and returns n.Err.
func (n *RecordingNotifier) Send(_ context.Context, msg notify.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.Err
}

// Sent returns a copy of the recorded messages.
func (n *RecordingNotifier) Sent() []notify.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Message(nil), n.sent...)
}

// Calls returns how many times Send was called.
func (n *RecordingNotifier) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}
