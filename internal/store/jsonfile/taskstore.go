// Package jsonfile implements stores backed by a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasker/internal/core/task"
)

// TaskStore implements task.Store as a pretty-printed JSON array on disk.
// Every Save rewrites the whole file.
type TaskStore struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex
}

// NewTaskStore creates a task store at the given path. The file is created
// on first Save.
func NewTaskStore(path string, log zerolog.Logger) *TaskStore {
	return &TaskStore{
		path: path,
		log:  log.With().Str("component", "task-store").Logger(),
	}
}

// Path returns the backing file path.
func (s *TaskStore) Path() string {
	return s.path
}

// Load returns the persisted collection. A missing or empty file yields an
// empty collection. Content that does not decode is treated as lost: it is
// logged and an empty collection is returned.
func (s *TaskStore) Load(ctx context.Context) (task.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Save replaces the file content with c.
func (s *TaskStore) Save(ctx context.Context, c task.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(c)
}

func (s *TaskStore) load(ctx context.Context) (task.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.Collection{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", task.ErrPersistence, s.path, err)
	}

	if len(data) == 0 {
		return task.Collection{}, nil
	}

	var c task.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		s.log.Warn().Ctx(ctx).Err(err).Str("path", s.path).Msg("task file is corrupt, continuing with an empty list")
		return task.Collection{}, nil
	}

	if c == nil {
		c = task.Collection{}
	}

	return c, nil
}

// save writes the file atomically via a temp file and rename.
func (s *TaskStore) save(c task.Collection) error {
	if c == nil {
		c = task.Collection{}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %w", task.ErrPersistence, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", task.ErrPersistence, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", task.ErrPersistence, tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", task.ErrPersistence, s.path, err)
	}

	return nil
}
