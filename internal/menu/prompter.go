package menu

import (
	"context"
	"errors"
)

// ErrAborted is returned by a Prompter when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Action is a main menu choice.
type Action string

const (
	ActionAdd   Action = "add"
	ActionList  Action = "list"
	ActionDone  Action = "done"
	ActionEmail Action = "email"
	ActionExit  Action = "exit"
)

// ActionOption pairs a menu label with its action.
type ActionOption struct {
	Label  string
	Action Action
}

// Actions lists the main menu in display order.
var Actions = []ActionOption{
	{Label: "Add Task", Action: ActionAdd},
	{Label: "List Tasks", Action: ActionList},
	{Label: "Mark Task as Done", Action: ActionDone},
	{Label: "Send Email Reminder", Action: ActionEmail},
	{Label: "Exit", Action: ActionExit},
}

// Choice is a selectable task, identified by its 1-based position.
type Choice struct {
	Label    string
	Position int
}

// Prompter collects input from the user.
type Prompter interface {
	// Action asks which main menu action to run.
	Action(ctx context.Context) (Action, error)
	// NewTask asks for the title and due date of a task. Neither is validated.
	NewTask(ctx context.Context) (title, dueDate string, err error)
	// SelectTask asks the user to pick one of choices and returns its position.
	SelectTask(ctx context.Context, choices []Choice) (int, error)
}
