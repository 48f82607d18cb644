// Package tui implements the interactive task list front-end.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/todo/internal/core/todo"
	"github.com/colonyops/todo/internal/core/validate"
	"github.com/colonyops/todo/internal/tracker"
)

// pane identifies one of the two task lists.
type pane int

const (
	panePending pane = iota
	paneDone
)

func (p pane) String() string {
	if p == paneDone {
		return "Done"
	}
	return "Pending"
}

// mode is the input mode of the model.
type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

const (
	fieldTitle = iota
	fieldStatus
)

// Deps holds what the model needs from the rest of the application.
type Deps struct {
	Tasks         *tracker.TaskService
	DefaultStatus string
}

// Model is the main TUI model.
type Model struct {
	ctx           context.Context
	tasks         *tracker.TaskService
	defaultStatus string

	list    *todo.List
	focus   pane
	cursors [2]int

	mode   mode
	inputs [2]textinput.Model
	field  int

	keys     keyMap
	formKeys formKeyMap
	help     help.Model

	width   int
	height  int
	message string
	err     error
}

// New creates a model with the snapshot loaded from the task service.
func New(ctx context.Context, deps Deps) Model {
	status := deps.DefaultStatus
	if status == "" {
		status = todo.StatusPending
	}

	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.Prompt = ""
	title.CharLimit = 256

	st := textinput.New()
	st.Placeholder = status
	st.Prompt = ""
	st.CharLimit = 64

	return Model{
		ctx:           ctx,
		tasks:         deps.Tasks,
		defaultStatus: status,
		list:          deps.Tasks.Load(ctx),
		inputs:        [2]textinput.Model{title, st},
		keys:          defaultKeyMap(),
		formKeys:      defaultFormKeyMap(),
		help:          help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every operation runs synchronously: the
// snapshot is small and each write is a single file replace.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Switch):
		if m.focus == panePending {
			m.focus = paneDone
		} else {
			m.focus = panePending
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursors[m.focus] > 0 {
			m.cursors[m.focus]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursors[m.focus] < m.paneLen(m.focus)-1 {
			m.cursors[m.focus]++
		}
	case key.Matches(msg, m.keys.Add):
		return m.openForm()
	case key.Matches(msg, m.keys.Complete):
		if m.focus != panePending {
			m.setError(fmt.Errorf("only pending tasks can be completed"))
			return m, nil
		}
		index := m.cursors[panePending]
		m = m.apply("complete", func(l *todo.List) (string, error) {
			task, err := l.Complete(index)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("completed %q", task.Title), nil
		})
	case key.Matches(msg, m.keys.Delete):
		if m.focus != panePending {
			m.setError(fmt.Errorf("only pending tasks can be deleted"))
			return m, nil
		}
		index := m.cursors[panePending]
		m = m.apply("delete", func(l *todo.List) (string, error) {
			task, err := l.Delete(index)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted %q", task.Title), nil
		})
	case key.Matches(msg, m.keys.Reload):
		m.list = m.tasks.Load(m.ctx)
		m.clampCursors()
		m.setMessage("reloaded")
	}

	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.mode = modeAdd
	m.field = fieldTitle
	m.inputs[fieldTitle].SetValue("")
	m.inputs[fieldStatus].SetValue(m.defaultStatus)
	m.inputs[fieldStatus].Blur()
	m.message = ""
	m.err = nil
	cmd := m.inputs[fieldTitle].Focus()
	return m, cmd
}

func (m Model) closeForm() Model {
	m.mode = modeBrowse
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		return m.closeForm(), nil
	case key.Matches(msg, m.formKeys.Next), key.Matches(msg, m.formKeys.Prev):
		m.inputs[m.field].Blur()
		m.field = 1 - m.field
		cmd := m.inputs[m.field].Focus()
		return m, cmd
	case key.Matches(msg, m.formKeys.Submit):
		title := m.inputs[fieldTitle].Value()
		if err := validate.Title(title); err != nil {
			m.setError(err)
			return m, nil
		}

		status := m.inputs[fieldStatus].Value()

		m = m.apply("add", func(l *todo.List) (string, error) {
			entry := l.Insert(title, status)
			return fmt.Sprintf("added %d: %s", entry.Index, entry.Title), nil
		})
		if m.err != nil {
			return m, nil
		}

		m.focus = panePending
		m.cursors[panePending] = len(m.list.Pending) - 1
		return m.closeForm(), nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

// apply runs fn against a copy of the list and persists it. The model only
// adopts the copy once the save succeeds.
func (m Model) apply(op string, fn func(*todo.List) (string, error)) Model {
	next := m.list.Clone()

	msg, err := fn(next)
	if err != nil {
		m.setError(err)
		return m
	}

	if err := m.tasks.Save(m.ctx, next); err != nil {
		log.Error().Err(err).Str("op", op).Msg("tui save failed")
		m.setError(err)
		return m
	}

	m.list = next
	m.clampCursors()
	m.setMessage(msg)
	return m
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.message = ""
	m.err = err
}

func (m Model) paneLen(p pane) int {
	if p == paneDone {
		return len(m.list.Done)
	}
	return len(m.list.Pending)
}

func (m *Model) clampCursors() {
	for _, p := range []pane{panePending, paneDone} {
		n := m.paneLen(p)
		switch {
		case n == 0:
			m.cursors[p] = 0
		case m.cursors[p] >= n:
			m.cursors[p] = n - 1
		}
	}
}
