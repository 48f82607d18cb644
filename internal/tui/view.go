package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/todo/internal/core/styles"
	"github.com/colonyops/todo/internal/core/todo"
)

const minPaneWidth = 24

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if m.mode == modeAdd {
		b.WriteString(m.formView())
	} else {
		b.WriteString(m.panesView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())

	if m.mode == modeAdd {
		b.WriteString(styles.HelpStyle.Render(m.help.View(m.formKeys)))
	} else {
		b.WriteString(styles.HelpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

func (m Model) panesView() string {
	width := minPaneWidth
	if half := m.width/2 - 4; half > width {
		width = half
	}

	listing := m.list.List()
	left := m.paneView(panePending, listing.Pending, width)
	right := m.paneView(paneDone, listing.Done, width)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) paneView(p pane, entries []todo.Entry, width int) string {
	style := styles.PaneStyle
	if m.focus == p {
		style = styles.PaneFocusedStyle
	}

	lines := []string{styles.PaneTitleStyle.Render(fmt.Sprintf("%s (%d)", p, len(entries)))}
	if len(entries) == 0 {
		lines = append(lines, styles.TextMutedStyle.Render("no tasks"))
	}

	for _, e := range entries {
		row := fmt.Sprintf("%d: %s", e.Index, e.Title)
		if m.focus == p && m.cursors[p] == e.Index {
			row = styles.RowSelectedStyle.Render(row)
		} else {
			row = styles.RowStyle.Render(row)
		}
		lines = append(lines, row+" "+statusBadge(e.Status))
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func statusBadge(status string) string {
	badge := "[" + status + "]"
	if status == todo.StatusDone {
		return styles.StatusDoneStyle.Render(badge)
	}
	return styles.StatusOtherStyle.Render(badge)
}

func (m Model) formView() string {
	labels := [2]string{"Title", "Status"}

	lines := []string{styles.FormTitleStyle.Render("New task"), ""}
	for i, in := range m.inputs {
		field := styles.FormFieldStyle
		if i == m.field {
			field = styles.FormFieldFocusedStyle
		}
		lines = append(lines, field.Render(styles.TextMutedStyle.Render(labels[i])+"\n"+in.View()), "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return styles.TextErrorStyle.Render("error: " + m.err.Error())
	case m.message != "":
		return styles.TextSuccessStyle.Render(m.message)
	default:
		return ""
	}
}
