package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/internal/store/jsonfile"
	"github.com/colonyops/todo/internal/tracker"
	"github.com/colonyops/todo/pkg/tuitest"
)

const snapshotPath = "/data/todo.json"

func newTestModel(t *testing.T, fs afero.Fs, seed ...todo.Task) (Model, *tracker.TaskService) {
	t.Helper()
	ctx := context.Background()

	store := jsonfile.NewSnapshotStore(fs, snapshotPath, zerolog.Nop())
	if len(seed) > 0 {
		list := todo.New()
		list.Pending = append(list.Pending, seed...)
		require.NoError(t, store.Save(ctx, list))
	}

	svc := tracker.NewTaskService(store, zerolog.Nop())
	m := New(ctx, Deps{Tasks: svc, DefaultStatus: todo.StatusPending})
	return send(m, tuitest.WindowSize(120, 40)), svc
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestModel_ShowsBothPanes(t *testing.T) {
	m, _ := newTestModel(t, afero.NewMemMapFs(), todo.Task{Title: "Buy milk", Status: "PENDING"})

	view := tuitest.StripANSI(m.View())

	assert.Contains(t, view, "Pending (1)")
	assert.Contains(t, view, "Done (0)")
	assert.Contains(t, view, "0: Buy milk [PENDING]")
	assert.Contains(t, view, "no tasks")
}

func TestModel_AddTask(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs())

	m = send(m, tuitest.KeyPress('a'))
	require.Equal(t, modeAdd, m.mode)
	assert.Equal(t, todo.StatusPending, m.inputs[fieldStatus].Value())
	assert.Contains(t, tuitest.StripANSI(m.View()), "New task")

	m = send(m, tuitest.Type("Buy milk")...)
	m = send(m, tuitest.KeyEnter())

	assert.Equal(t, modeBrowse, m.mode)
	assert.NoError(t, m.err)
	assert.Equal(t, "added 0: Buy milk", m.message)
	assert.Contains(t, tuitest.StripANSI(m.View()), "0: Buy milk [PENDING]")

	persisted := svc.Load(context.Background())
	assert.Equal(t, []todo.Task{{Title: "Buy milk", Status: "PENDING"}}, persisted.Pending)
}

func TestModel_AddTaskCustomStatus(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs())

	m = send(m, tuitest.KeyPress('a'))
	m = send(m, tuitest.Type("Walk dog")...)
	m = send(m, tuitest.KeyTab())
	for range len(todo.StatusPending) {
		m = send(m, tuitest.KeyBackspace())
	}
	m = send(m, tuitest.Type("later")...)
	m = send(m, tuitest.KeyEnter())

	persisted := svc.Load(context.Background())
	assert.Equal(t, []todo.Task{{Title: "Walk dog", Status: "later"}}, persisted.Pending)
}

func TestModel_AddTaskEmptyStatus(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs())

	m = send(m, tuitest.KeyPress('a'))
	m = send(m, tuitest.Type("Walk dog")...)
	m = send(m, tuitest.KeyTab())
	for range len(todo.StatusPending) {
		m = send(m, tuitest.KeyBackspace())
	}
	require.Empty(t, m.inputs[fieldStatus].Value())
	m = send(m, tuitest.KeyEnter())

	require.NoError(t, m.err)
	persisted := svc.Load(context.Background())
	assert.Equal(t, []todo.Task{{Title: "Walk dog", Status: ""}}, persisted.Pending)
}

func TestModel_AddCancel(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs())

	m = send(m, tuitest.KeyPress('a'))
	m = send(m, tuitest.Type("Nope")...)
	m = send(m, tuitest.KeyEsc())

	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.list.Pending)
	assert.Empty(t, svc.Load(context.Background()).Pending)
}

func TestModel_AddBlankTitle(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs())

	m = send(m, tuitest.KeyPress('a'), tuitest.KeyPress(' '), tuitest.KeyEnter())

	assert.Equal(t, modeAdd, m.mode, "form stays open")
	require.Error(t, m.err)
	assert.Contains(t, tuitest.StripANSI(m.View()), "title is required")
	assert.Empty(t, svc.Load(context.Background()).Pending)
}

func TestModel_CompleteTask(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs(),
		todo.Task{Title: "A", Status: "x"},
		todo.Task{Title: "B", Status: "y"},
	)

	m = send(m, tuitest.KeyDown(), tuitest.KeyPress('c'))

	require.NoError(t, m.err)
	assert.Equal(t, `completed "B"`, m.message)
	assert.Equal(t, []todo.Task{{Title: "A", Status: "x"}}, m.list.Pending)
	assert.Equal(t, []todo.Task{{Title: "B", Status: todo.StatusDone}}, m.list.Done)
	assert.Equal(t, 0, m.cursors[panePending], "cursor clamps to the remaining task")

	persisted := svc.Load(context.Background())
	assert.Equal(t, m.list.Done, persisted.Done)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "0: B [DONE]")
}

func TestModel_DeleteTask(t *testing.T) {
	m, svc := newTestModel(t, afero.NewMemMapFs(),
		todo.Task{Title: "A", Status: "x"},
		todo.Task{Title: "B", Status: "y"},
	)

	m = send(m, tuitest.KeyPress('d'))

	require.NoError(t, m.err)
	assert.Equal(t, []todo.Task{{Title: "B", Status: "y"}}, m.list.Pending)
	assert.Equal(t, m.list.Pending, svc.Load(context.Background()).Pending)
}

func TestModel_EmptyPendingKeepsState(t *testing.T) {
	m, _ := newTestModel(t, afero.NewMemMapFs())

	m = send(m, tuitest.KeyPress('c'))

	require.ErrorIs(t, m.err, todo.ErrInvalidIndex)
	assert.Contains(t, tuitest.StripANSI(m.View()), "error: invalid index: 0")
}

func TestModel_DonePaneRejectsActions(t *testing.T) {
	m, _ := newTestModel(t, afero.NewMemMapFs(), todo.Task{Title: "A", Status: "x"})

	m = send(m, tuitest.KeyTab())
	require.Equal(t, paneDone, m.focus)

	m = send(m, tuitest.KeyPress('d'))

	require.Error(t, m.err)
	assert.Len(t, m.list.Pending, 1)
}

func TestModel_SaveFailureKeepsState(t *testing.T) {
	base := afero.NewMemMapFs()
	seeded, _ := newTestModel(t, base, todo.Task{Title: "A", Status: "x"})
	require.Len(t, seeded.list.Pending, 1)

	m, _ := newTestModel(t, afero.NewReadOnlyFs(base))

	m = send(m, tuitest.KeyPress('c'))

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "save snapshot")
	assert.Equal(t, []todo.Task{{Title: "A", Status: "x"}}, m.list.Pending)
	assert.Empty(t, m.list.Done)
}

func TestModel_Reload(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, svc := newTestModel(t, fs)

	_, err := svc.Add(context.Background(), "From CLI", "PENDING")
	require.NoError(t, err)
	assert.Empty(t, m.list.Pending)

	m = send(m, tuitest.KeyPress('r'))

	assert.Equal(t, "reloaded", m.message)
	assert.Len(t, m.list.Pending, 1)
}

func TestModel_CursorBounds(t *testing.T) {
	m, _ := newTestModel(t, afero.NewMemMapFs(),
		todo.Task{Title: "A", Status: "x"},
		todo.Task{Title: "B", Status: "x"},
	)

	m = send(m, tuitest.KeyUp())
	assert.Equal(t, 0, m.cursors[panePending])

	m = send(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, 1, m.cursors[panePending])

	m = send(m, tuitest.KeyPress('k'))
	assert.Equal(t, 0, m.cursors[panePending])
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, afero.NewMemMapFs())

	_, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
