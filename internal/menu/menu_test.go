package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasker/internal/core/config"
	"github.com/colonyops/tasker/internal/core/notify"
	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/internal/quote"
	"github.com/colonyops/tasker/internal/store/jsonfile"
	"github.com/colonyops/tasker/internal/tasker"
	"github.com/colonyops/tasker/internal/testutil"
)

// step is one scripted answer. Exactly one of the fields is meaningful
// depending on which prompt consumes it.
type step struct {
	action  Action
	title   string
	dueDate string
	pick    int
	err     error
}

type scriptedPrompter struct {
	t       *testing.T
	steps   []step
	choices [][]Choice
}

func (p *scriptedPrompter) next() step {
	p.t.Helper()
	if len(p.steps) == 0 {
		// Running out of script ends the session.
		return step{action: ActionExit}
	}
	s := p.steps[0]
	p.steps = p.steps[1:]
	return s
}

func (p *scriptedPrompter) Action(context.Context) (Action, error) {
	s := p.next()
	return s.action, s.err
}

func (p *scriptedPrompter) NewTask(context.Context) (string, string, error) {
	s := p.next()
	return s.title, s.dueDate, s.err
}

func (p *scriptedPrompter) SelectTask(_ context.Context, choices []Choice) (int, error) {
	p.choices = append(p.choices, choices)
	s := p.next()
	return s.pick, s.err
}

type harness struct {
	menu     *Menu
	out      *bytes.Buffer
	store    *jsonfile.TaskStore
	notifier *testutil.RecordingNotifier
	prompter *scriptedPrompter
}

func newHarness(t *testing.T, quotes quote.Fetcher, steps ...step) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.TasksFile = filepath.Join(t.TempDir(), "tasks.json")
	cfg.Reminder.From = "me@example.com"
	cfg.Reminder.To = "you@example.com"

	store := jsonfile.NewTaskStore(cfg.TasksFile, zerolog.Nop())
	notifier := &testutil.RecordingNotifier{}
	app := tasker.NewApp(&cfg, store, notifier, quotes, zerolog.Nop())

	prompter := &scriptedPrompter{t: t, steps: steps}
	out := &bytes.Buffer{}

	return &harness{
		menu:     New(app, prompter, out, zerolog.Nop()),
		out:      out,
		store:    store,
		notifier: notifier,
		prompter: prompter,
	}
}

func addSteps(title, dueDate string) []step {
	return []step{{action: ActionAdd}, {title: title, dueDate: dueDate}}
}

func script(parts ...[]step) []step {
	var all []step
	for _, p := range parts {
		all = append(all, p...)
	}
	return all
}

func TestMenu_ExitPrintsGoodbye(t *testing.T) {
	h := newHarness(t, testutil.StaticQuotes{Quote: "Keep going."}, step{action: ActionExit})

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Task Manager")
	assert.Contains(t, out, `Motivational Quote: "Keep going."`)
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_AddThenList(t *testing.T) {
	h := newHarness(t, testutil.StaticQuotes{Quote: "q"}, script(
		addSteps("Write report", "2024-06-01"),
		[]step{{action: ActionList}, {action: ActionExit}},
	)...)

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Task added!")
	assert.Contains(t, out, "Your Tasks:")
	assert.Contains(t, out, "1. [ ] Write report - Due: 2024-06-01\n")

	data, err := os.ReadFile(h.store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"done": false`)
}

func TestMenu_ListEmpty(t *testing.T) {
	h := newHarness(t, nil, step{action: ActionList})

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Your Tasks:")
	assert.NotContains(t, out, "Due:")
	assert.NotContains(t, out, "Error")
}

func TestMenu_MarkDone(t *testing.T) {
	h := newHarness(t, nil, script(
		addSteps("first", "2024-01-01"),
		addSteps("second", "2024-01-02"),
		[]step{{action: ActionDone}, {pick: 1}, {action: ActionList}},
	)...)

	require.NoError(t, h.menu.Run(context.Background()))

	require.Len(t, h.prompter.choices, 1)
	assert.Equal(t, []Choice{
		{Label: "1. first", Position: 1},
		{Label: "2. second", Position: 2},
	}, h.prompter.choices[0])

	out := h.out.String()
	assert.Contains(t, out, "Task marked as done!")
	assert.Contains(t, out, "1. [✓] first - Due: 2024-01-01\n")
	assert.Contains(t, out, "2. [ ] second - Due: 2024-01-02\n")
}

func TestMenu_MarkDoneEmpty(t *testing.T) {
	h := newHarness(t, nil, step{action: ActionDone})

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "No tasks to mark as done.")
	assert.Empty(t, h.prompter.choices, "no selection prompt for an empty list")
}

func TestMenu_ReminderAllDone(t *testing.T) {
	h := newHarness(t, nil, script(
		addSteps("only", "2024-01-01"),
		[]step{{action: ActionDone}, {pick: 1}, {action: ActionEmail}},
	)...)

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "No pending tasks to remind.")
	assert.Zero(t, h.notifier.Calls())
}

func TestMenu_ReminderSent(t *testing.T) {
	h := newHarness(t, nil, script(
		addSteps("a", "2024-01-01"),
		[]step{{action: ActionEmail}},
	)...)

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Email reminder sent!")
	require.Equal(t, 1, h.notifier.Calls())
	assert.Equal(t, "Daily Task Reminder", h.notifier.Sent()[0].Subject)
}

func TestMenu_ReminderFailureKeepsLooping(t *testing.T) {
	h := newHarness(t, nil, script(
		addSteps("a", "2024-01-01"),
		[]step{{action: ActionEmail}, {action: ActionList}, {action: ActionExit}},
	)...)
	h.notifier.Err = fmt.Errorf("%w: smtp down", notify.ErrDelivery)

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Error sending email:")
	assert.Contains(t, out, "smtp down")

	// The menu came back and served the next action.
	errIdx := strings.Index(out, "Error sending email:")
	listIdx := strings.Index(out, "1. [ ] a - Due: 2024-01-01")
	assert.Greater(t, listIdx, errIdx)
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_QuoteFailureDoesNotBlock(t *testing.T) {
	quotes := testutil.StaticQuotes{Err: fmt.Errorf("%w: offline", quote.ErrFetch)}
	h := newHarness(t, quotes, script(
		addSteps("a", "b"),
		[]step{{action: ActionExit}},
	)...)

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.NotContains(t, out, "Motivational Quote")
	assert.Contains(t, out, "Task added!")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_AbortedMainPromptExits(t *testing.T) {
	h := newHarness(t, nil, step{err: ErrAborted})

	require.NoError(t, h.menu.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Goodbye!")
}

func TestMenu_AbortedAddReturnsToMenu(t *testing.T) {
	h := newHarness(t, nil,
		step{action: ActionAdd},
		step{err: ErrAborted},
		step{action: ActionList},
	)

	require.NoError(t, h.menu.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Cancelled.")

	tasks, err := h.store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestMenu_PromptFailureIsReturned(t *testing.T) {
	boom := errors.New("tty gone")
	h := newHarness(t, nil, step{err: boom})

	err := h.menu.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestMenu_CancelledContextExits(t *testing.T) {
	h := newHarness(t, nil, step{action: ActionList})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.menu.Run(ctx))
	assert.Contains(t, h.out.String(), "Goodbye!")
	assert.Len(t, h.prompter.steps, 1, "no prompt after cancellation")
}

func TestMenu_PersistenceErrorIsReported(t *testing.T) {
	h := newHarness(t, nil, script(
		addSteps("a", "b"),
		[]step{{action: ActionExit}},
	)...)

	// Replace the tasks file location with a directory so reads fail.
	require.NoError(t, os.Mkdir(h.store.Path(), 0o755))

	require.NoError(t, h.menu.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, task.ErrPersistence.Error())
	assert.Contains(t, out, "Goodbye!")
}
