package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasker/internal/core/task"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(filepath.Join(t.TempDir(), "tasks.json"), zerolog.Nop())
}

func TestTaskStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	c, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestTaskStore_LoadEmptyFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), nil, 0o644))

	c, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestTaskStore_SaveWritesPrettyArray(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	c := task.Collection{task.New("Write report", "2024-06-01")}
	require.NoError(t, store.Save(ctx, c))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	want := `[
  {
    "title": "Write report",
    "dueDate": "2024-06-01",
    "done": false
  }
]`
	assert.Equal(t, want, string(data))

	_, err = os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestTaskStore_SaveEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestTaskStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	c := task.Collection{
		task.New("a", "2024-01-01"),
		{Title: "b", DueDate: "2024-01-02", Done: true},
		task.New("c", ""),
	}
	require.NoError(t, store.Save(ctx, c))

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	require.NoError(t, store.Save(ctx, loaded))

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestTaskStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json"},
		{name: "object instead of array", content: `{"title":"x"}`},
		{name: "truncated", content: `[{"title":"x",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0o644))

			c, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, c)
		})
	}
}

func TestTaskStore_UnreadablePathIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	store := NewTaskStore(path, zerolog.Nop())

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, task.ErrPersistence)

	err = store.Save(context.Background(), task.Collection{task.New("a", "")})
	require.ErrorIs(t, err, task.ErrPersistence)
}

func TestTaskStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	store := NewTaskStore(path, zerolog.Nop())

	require.NoError(t, store.Save(context.Background(), task.Collection{task.New("a", "")}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestTaskStore_ConcurrentLoadAndSave(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Save(ctx, task.Collection{task.New("seed", "")}))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c, err := store.Load(ctx)
			assert.NoError(t, err)
			assert.NotEmpty(t, c)
		}()
		go func() {
			defer wg.Done()
			c := task.Collection{task.New("seed", "")}
			for range i {
				c.Add(task.New("extra", ""))
			}
			assert.NoError(t, store.Save(ctx, c))
		}()
	}
	wg.Wait()
}
