// Package task defines the task domain model and its positional collection.
package task

import (
	"fmt"
	"strings"
)

// Task is a single to-do item. DueDate is free text and is never parsed.
type Task struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
	Done    bool   `json:"done"`
}

// New returns a pending task.
func New(title, dueDate string) Task {
	return Task{Title: title, DueDate: dueDate}
}

// Collection is the ordered list of all tasks. A task is addressed by its
// 1-based position; order is append-only.
type Collection []Task

// Add appends t and returns its position.
func (c *Collection) Add(t Task) int {
	*c = append(*c, t)
	return len(*c)
}

// MarkDone sets Done on the task at the 1-based position pos.
// Marking a task that is already done is a no-op.
func (c Collection) MarkDone(pos int) error {
	if pos < 1 || pos > len(c) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrPositionOutOfRange, pos, len(c))
	}
	c[pos-1].Done = true
	return nil
}

// Pending returns the tasks that are not done, in collection order.
func (c Collection) Pending() []Task {
	pending := make([]Task, 0, len(c))
	for _, t := range c {
		if !t.Done {
			pending = append(pending, t)
		}
	}
	return pending
}

// FormatLine renders a task for the list view:
//
//	1. [✓] Write report - Due: 2024-06-01
func FormatLine(pos int, t Task) string {
	mark := " "
	if t.Done {
		mark = "✓"
	}
	return fmt.Sprintf("%d. [%s] %s - Due: %s", pos, mark, t.Title, t.DueDate)
}

// FormatChoice renders a task as a selection label ("1. Write report").
func FormatChoice(pos int, t Task) string {
	return fmt.Sprintf("%d. %s", pos, t.Title)
}

// Lines renders every task with FormatLine. An empty collection renders
// no lines.
func (c Collection) Lines() []string {
	lines := make([]string, 0, len(c))
	for i, t := range c {
		lines = append(lines, FormatLine(i+1, t))
	}
	return lines
}

// String joins Lines with newlines.
func (c Collection) String() string {
	return strings.Join(c.Lines(), "\n")
}
