package menu

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/colonyops/tasker/internal/core/styles"
)

// HuhPrompter implements Prompter with huh forms. When input is not a
// terminal it falls back to huh's line-based accessible mode.
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewHuhPrompter creates a prompter reading from in and drawing to out.
func NewHuhPrompter(in *os.File, out io.Writer) *HuhPrompter {
	return &HuhPrompter{
		in:         in,
		out:        out,
		accessible: !term.IsTerminal(int(in.Fd())),
	}
}

// Action implements Prompter.
func (p *HuhPrompter) Action(ctx context.Context) (Action, error) {
	opts := make([]huh.Option[Action], 0, len(Actions))
	for _, a := range Actions {
		opts = append(opts, huh.NewOption(a.Label, a.Action))
	}

	var action Action
	err := p.run(ctx,
		huh.NewSelect[Action]().
			Title("Choose an action:").
			Options(opts...).
			Value(&action),
	)
	return action, err
}

// NewTask implements Prompter.
func (p *HuhPrompter) NewTask(ctx context.Context) (string, string, error) {
	var title, dueDate string
	err := p.run(ctx,
		huh.NewInput().
			Title("Task Title:").
			Value(&title),
		huh.NewInput().
			Title("Due Date (YYYY-MM-DD):").
			Placeholder("2024-06-01").
			Value(&dueDate),
	)
	return title, dueDate, err
}

// SelectTask implements Prompter.
func (p *HuhPrompter) SelectTask(ctx context.Context, choices []Choice) (int, error) {
	opts := make([]huh.Option[int], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Position))
	}

	var pos int
	err := p.run(ctx,
		huh.NewSelect[int]().
			Title("Select a task to mark as done").
			Options(opts...).
			Value(&pos),
	)
	return pos, err
}

func (p *HuhPrompter) run(ctx context.Context, fields ...huh.Field) error {
	err := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(styles.FormTheme()).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
