package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateAddTask:
		return docStyle.Render(m.form.View())
	case constants.StateConfirmReset:
		return m.viewConfirmReset()
	case constants.StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	return m.viewBoard()
}

func (m Model) viewBoard() string {
	colWidth := m.columnWidth()

	left := m.viewColumn(PaneToday, "Today", colWidth)
	right := m.viewColumn(PaneSomeday, "Someday", colWidth)
	board := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", columnGap), right)

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		board,
		"",
		status,
		m.help.View(m),
	))
}

func (m Model) viewColumn(pane Pane, title string, width int) string {
	tasks := m.paneList(pane)

	headerStyle := inactivePaneStyle
	if m.pane == pane {
		headerStyle = activePaneStyle
	}
	lines := []string{headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(tasks)))}

	cursor := m.todayCursor
	if pane == PaneSomeday {
		cursor = m.somedayCursor
	}

	if len(tasks) == 0 {
		lines = append(lines, statusStyle.Render("  nothing here"))
	}
	for i, task := range tasks {
		lines = append(lines, m.viewRow(task, m.pane == pane && cursor == i, width))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewRow(task models.Task, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	title := task.Title
	if maxTitle := width - 4; maxTitle > 0 && len(title) > maxTitle {
		title = title[:maxTitle-1] + "…"
	}

	label := title
	if task.CategoryID != "" {
		if cat, ok := m.tree.Get(task.CategoryID); ok {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("●")
			label = fmt.Sprintf("%s %s %s", label, swatch, categoryStyle.Render(cat.Name))
		}
	}
	if task.Paused {
		label = pausedStyle.Render("⏸ ") + label
	}

	row := marker + label
	if selected {
		return selectedRowStyle.Render(row)
	}
	return row
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Clear today's focus list?"),
			"All tasks move back to someday.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmDelete() string {
	title := m.taskToDeleteID
	if task, ok := m.coord.Task(m.taskToDeleteID); ok {
		title = task.Title
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", title)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
