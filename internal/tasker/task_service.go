package tasker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasker/internal/core/task"
)

// TaskService implements the add, list and mark-done workflows. Each call
// loads the collection fresh, mutates it and saves it whole.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(store task.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
	}
}

// Add appends a pending task and returns its position. Title and due date
// are stored as given.
func (s *TaskService) Add(ctx context.Context, title, dueDate string) (int, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load tasks: %w", err)
	}

	pos := c.Add(task.New(title, dueDate))

	if err := s.store.Save(ctx, c); err != nil {
		return 0, fmt.Errorf("save tasks: %w", err)
	}

	s.log.Debug().Int("position", pos).Str("title", title).Msg("task added")
	return pos, nil
}

// List returns all tasks in insertion order.
func (s *TaskService) List(ctx context.Context) (task.Collection, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return c, nil
}

// MarkDone marks the task at the 1-based position pos as done.
func (s *TaskService) MarkDone(ctx context.Context, pos int) error {
	c, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	if err := c.MarkDone(pos); err != nil {
		return fmt.Errorf("mark done: %w", err)
	}

	if err := s.store.Save(ctx, c); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	s.log.Debug().Int("position", pos).Msg("task marked done")
	return nil
}

// PendingCount returns the number of tasks not yet done.
func (s *TaskService) PendingCount(ctx context.Context) (int, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load tasks: %w", err)
	}
	return len(c.Pending()), nil
}
