package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/internal/store/jsonfile"
)

// recordingStore keeps the snapshot in memory and counts writes.
type recordingStore struct {
	list    *todo.List
	saves   int
	saveErr error
}

func (s *recordingStore) Load(context.Context) *todo.List {
	if s.list == nil {
		return todo.New()
	}
	return s.list.Clone()
}

func (s *recordingStore) Save(_ context.Context, list *todo.List) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.list = list.Clone()
	return nil
}

func newTestTaskService(t *testing.T) (*TaskService, *recordingStore) {
	t.Helper()
	store := &recordingStore{}
	return NewTaskService(store, zerolog.Nop()), store
}

func TestTaskService_Add(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTaskService(t)

	entry, err := svc.Add(ctx, "Buy milk", "PENDING")
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Index)

	entry, err = svc.Add(ctx, "Walk dog", "later")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Index)

	assert.Equal(t, 2, store.saves)
	assert.Equal(t, []todo.Task{
		{Title: "Buy milk", Status: "PENDING"},
		{Title: "Walk dog", Status: "later"},
	}, store.list.Pending)
}

func TestTaskService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("moves task and saves", func(t *testing.T) {
		svc, store := newTestTaskService(t)
		_, err := svc.Add(ctx, "A", "x")
		require.NoError(t, err)

		task, err := svc.Complete(ctx, 0)
		require.NoError(t, err)

		assert.Equal(t, todo.Task{Title: "A", Status: todo.StatusDone}, task)
		assert.Equal(t, 2, store.saves)
		assert.Empty(t, store.list.Pending)
		assert.Equal(t, []todo.Task{task}, store.list.Done)
	})

	t.Run("invalid index does not save", func(t *testing.T) {
		svc, store := newTestTaskService(t)

		_, err := svc.Complete(ctx, 0)

		require.ErrorIs(t, err, todo.ErrInvalidIndex)
		assert.Equal(t, 0, store.saves)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes task and saves", func(t *testing.T) {
		svc, store := newTestTaskService(t)
		_, err := svc.Add(ctx, "A", "x")
		require.NoError(t, err)
		_, err = svc.Add(ctx, "B", "x")
		require.NoError(t, err)

		task, err := svc.Delete(ctx, 0)
		require.NoError(t, err)

		assert.Equal(t, "A", task.Title)
		assert.Equal(t, []todo.Task{{Title: "B", Status: "x"}}, store.list.Pending)
	})

	t.Run("invalid index does not save", func(t *testing.T) {
		svc, store := newTestTaskService(t)
		_, err := svc.Add(ctx, "A", "x")
		require.NoError(t, err)

		_, err = svc.Delete(ctx, 1)

		require.ErrorIs(t, err, todo.ErrInvalidIndex)
		assert.Equal(t, 1, store.saves)
		assert.Len(t, store.list.Pending, 1)
	})
}

func TestTaskService_ListSaves(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTaskService(t)

	listing, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Empty(t, listing.Pending)
	assert.Empty(t, listing.Done)
	assert.Equal(t, 1, store.saves)
}

func TestTaskService_SaveFailure(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTaskService(t)
	store.saveErr = errors.New("disk full")

	_, err := svc.Add(ctx, "A", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save snapshot")
	assert.Contains(t, err.Error(), "disk full")
}

func TestTaskService_Scenario(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := jsonfile.NewSnapshotStore(fs, "/todo.json", zerolog.Nop())
	svc := NewTaskService(store, zerolog.Nop())

	_, err := svc.Add(ctx, "Buy milk", "PENDING")
	require.NoError(t, err)

	listing, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Pending, 1)
	assert.Equal(t, "Buy milk", listing.Pending[0].Title)

	_, err = svc.Complete(ctx, 0)
	require.NoError(t, err)

	listing, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listing.Pending)
	require.Len(t, listing.Done, 1)
	assert.Equal(t, todo.Entry{Index: 0, Task: todo.Task{Title: "Buy milk", Status: "DONE"}}, listing.Done[0])

	_, err = svc.Complete(ctx, 0)
	assert.ErrorIs(t, err, todo.ErrInvalidIndex)
}
