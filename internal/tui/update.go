package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/focus"
	"github.com/julianstephens/zenfocus/internal/logger"
	"github.com/julianstephens/zenfocus/internal/models"
)

// Board geometry shared by View and the mouse hit test. The doc padding
// offsets content by (2,1) and one header line sits above the task rows.
const (
	contentLeft = 2
	listTop     = 2
	columnGap   = 2
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case noticeMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("⚠ %v", msg.err)
		}
		return m, waitForNotice(m.coord)
	case completedMsg:
		cmds := []tea.Cmd{waitForCompletion(m.completions)}
		if task, ok := m.coord.Task(msg.taskID); ok {
			m.status = fmt.Sprintf("Completed %q", task.Title)
			cmds = append(cmds, m.notifyCompletion(task.Title))
		}
		return m, tea.Batch(cmds...)
	}

	switch m.state {
	case constants.StateAddTask:
		return m.updateAddTask(msg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateBoard(msg)
}

func (m Model) updateAddTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateBoard
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		task := models.Task{
			ID:        uuid.New().String(),
			Title:     m.taskForm.Title,
			CreatedAt: time.Now(),
		}

		if m.taskForm.Category != "" {
			cat, created, err := m.tree.EnsureChild(m.taskForm.Category)
			if err != nil {
				m.status = fmt.Sprintf("⚠ %v", err)
				m.state = constants.StateBoard
				return m, tea.Batch(cmds...)
			}
			if created {
				m.saveCategories()
			}
			task.CategoryID = cat.ID
		}

		if err := m.coord.AddNewTask(task, m.taskForm.Today); err != nil {
			m.status = fmt.Sprintf("⚠ %v", err)
		} else {
			m.status = fmt.Sprintf("Added %q", task.Title)
		}
		m.state = constants.StateBoard
	case huh.StateAborted:
		m.state = constants.StateBoard
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.coord.ResetDailyFocus()
			m.todayCursor = 0
			m.status = "Today's focus cleared"
			m.state = constants.StateBoard
		case "n", "N", "esc", "q":
			m.state = constants.StateBoard
		}
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if task, ok := m.coord.Task(m.taskToDeleteID); ok {
				m.status = fmt.Sprintf("Deleted %q", task.Title)
			}
			m.coord.DeleteTask(m.taskToDeleteID)
			m.taskToDeleteID = ""
			m.clampCursors()
			m.state = constants.StateBoard
		case "n", "N", "esc", "q":
			m.taskToDeleteID = ""
			m.state = constants.StateBoard
		}
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleBoardKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.coord.Flush()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		if m.pane == PaneToday {
			m.pane = PaneSomeday
		} else {
			m.pane = PaneToday
		}

	case key.Matches(msg, m.keys.Up):
		cur := m.cursor()
		if *cur > 0 {
			*cur--
		}

	case key.Matches(msg, m.keys.Down):
		cur := m.cursor()
		if *cur < len(m.activeList())-1 {
			*cur++
		}

	case key.Matches(msg, m.keys.Add):
		m.state = constants.StateAddTask
		m.newTaskForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selectedTask(); ok {
			m.coord.ToggleTaskCompletion(task.ID)
			m.clampCursors()
		}

	case key.Matches(msg, m.keys.Focus):
		if m.pane == PaneSomeday {
			if task, ok := m.selectedTask(); ok {
				m.coord.AddTaskToFocus(task.ID, nil)
				m.clampCursors()
			}
		}

	case key.Matches(msg, m.keys.Unfocus):
		if m.pane == PaneToday {
			if task, ok := m.selectedTask(); ok {
				m.coord.RemoveTaskFromFocus(task.ID)
				m.clampCursors()
			}
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.pane == PaneToday && m.todayCursor > 0 {
			m.coord.ReorderToday(m.todayCursor, m.todayCursor-1)
			m.todayCursor--
		}

	case key.Matches(msg, m.keys.MoveDown):
		if m.pane == PaneToday && m.todayCursor < len(m.coord.Today())-1 {
			m.coord.ReorderToday(m.todayCursor, m.todayCursor+1)
			m.todayCursor++
		}

	case key.Matches(msg, m.keys.Pause):
		if task, ok := m.selectedTask(); ok {
			m.coord.PauseTask(task.ID, !task.Paused)
		}

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok {
			m.taskToDeleteID = task.ID
			m.state = constants.StateConfirmDelete
		}

	case key.Matches(msg, m.keys.Reset):
		if len(m.coord.Today()) > 0 {
			m.state = constants.StateConfirmReset
		}
	}
	return m, nil
}

// handleMouse supports click-to-select and drag-and-drop between panes. The
// drop lands wherever the pointer is on release, regardless of where the
// drag began.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	pane, row := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		list := m.paneList(pane)
		if row >= 0 && row < len(list) {
			m.pane = pane
			*m.cursorFor(pane) = row
			m.dragID = list[row].ID
		}

	case tea.MouseActionRelease:
		if m.dragID == "" {
			return m, nil
		}
		target := constants.PartitionToday
		if pane == PaneSomeday {
			target = constants.PartitionSomeday
		}
		action := m.coord.HandleDrop(m.dragID, target, float64(row), 1)
		if action != focus.DropNone {
			m.pane = pane
			m.clampCursors()
		}
		m.dragID = ""
	}
	return m, nil
}

// hitTest maps terminal coordinates to a pane and a row offset within that
// pane's task list. Rows above the list come back negative.
func (m Model) hitTest(x, y int) (Pane, int) {
	colWidth := m.columnWidth()
	pane := PaneToday
	if x >= contentLeft+colWidth+columnGap {
		pane = PaneSomeday
	}
	return pane, y - listTop
}

func (m Model) columnWidth() int {
	w := (m.width - 2*contentLeft - columnGap) / 2
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) saveCategories() {
	for _, cat := range m.tree.All() {
		if err := m.store.UpsertCategory(cat); err != nil {
			logger.Error("Failed to save category", "category", cat.Name, "error", err)
			m.status = fmt.Sprintf("⚠ category %q was not saved", cat.Name)
		}
	}
}

func (m Model) activeList() []models.Task {
	return m.paneList(m.pane)
}

func (m Model) paneList(pane Pane) []models.Task {
	if pane == PaneToday {
		return m.coord.Today()
	}
	return m.coord.Someday()
}

func (m *Model) cursor() *int {
	return m.cursorFor(m.pane)
}

func (m *Model) cursorFor(pane Pane) *int {
	if pane == PaneToday {
		return &m.todayCursor
	}
	return &m.somedayCursor
}

func (m *Model) selectedTask() (models.Task, bool) {
	list := m.activeList()
	cur := *m.cursor()
	if cur < 0 || cur >= len(list) {
		return models.Task{}, false
	}
	return list[cur], true
}

func (m *Model) clampCursors() {
	if n := len(m.coord.Today()); m.todayCursor >= n {
		m.todayCursor = n - 1
	}
	if m.todayCursor < 0 {
		m.todayCursor = 0
	}
	if n := len(m.coord.Someday()); m.somedayCursor >= n {
		m.somedayCursor = n - 1
	}
	if m.somedayCursor < 0 {
		m.somedayCursor = 0
	}
}
