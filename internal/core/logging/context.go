package logging

import "context"

type contextKey string

const triggerKey contextKey = "trigger"

// Trigger values identify what started a workflow.
const (
	TriggerMenu     = "menu"
	TriggerSchedule = "schedule"
)

// WithTrigger records what started the current workflow in the context.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKey, trigger)
}

// GetTrigger retrieves the trigger from the context.
// Returns empty string if not present.
func GetTrigger(ctx context.Context) string {
	if t, ok := ctx.Value(triggerKey).(string); ok {
		return t
	}
	return ""
}
