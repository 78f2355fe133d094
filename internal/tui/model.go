package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenfocus/internal/category"
	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/events"
	"github.com/julianstephens/zenfocus/internal/focus"
	"github.com/julianstephens/zenfocus/internal/logger"
	"github.com/julianstephens/zenfocus/internal/notifier"
	"github.com/julianstephens/zenfocus/internal/storage"
)

// Pane identifies which side of the board has keyboard focus.
type Pane int

const (
	PaneToday Pane = iota
	PaneSomeday
)

type TaskFormModel struct {
	Title    string
	Category string
	Today    bool
}

// noticeMsg carries an asynchronous persistence failure to the status line.
type noticeMsg struct {
	err error
}

// completedMsg relays a task completion event from the bus.
type completedMsg struct {
	taskID string
}

type Model struct {
	coord       *focus.Coordinator
	tree        *category.Tree
	store       storage.Provider
	completions <-chan events.Event

	state         constants.SessionState
	pane          Pane
	todayCursor   int
	somedayCursor int

	keys KeyMap
	help help.Model

	form     *huh.Form
	taskForm *TaskFormModel

	taskToDeleteID string
	dragID         string
	status         string
	quitting       bool
	width          int
	height         int
}

func NewModel(coord *focus.Coordinator, tree *category.Tree, store storage.Provider, bus *events.Bus) Model {
	return Model{
		coord:       coord,
		tree:        tree,
		store:       store,
		completions: bus.Subscribe(events.TaskCompleted),
		state:       constants.StateBoard,
		pane:        PaneToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForNotice(m.coord), waitForCompletion(m.completions))
}

// waitForNotice blocks on the coordinator's save failure channel and feeds
// the next failure back into the update loop.
func waitForNotice(coord *focus.Coordinator) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-coord.Notices()
		if !ok {
			return nil
		}
		return noticeMsg{err: err}
	}
}

// waitForCompletion relays the next task completion event. The tray webhook
// fires here so every completion path, keyboard or mouse, notifies once.
func waitForCompletion(sub <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-sub
		if !ok {
			return nil
		}
		return completedMsg{taskID: evt.TaskID}
	}
}

func (m Model) notifyCompletion(title string) tea.Cmd {
	return func() tea.Msg {
		if err := notifier.New().Notify(fmt.Sprintf("Completed: %s", title)); err != nil {
			logger.Debug("Tray notification skipped", "error", err)
		}
		return nil
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Add, m.keys.Toggle}
	if m.pane == PaneToday {
		keys = append(keys, m.keys.Unfocus, m.keys.MoveUp, m.keys.MoveDown)
	} else {
		keys = append(keys, m.keys.Focus)
	}
	return append(keys, m.keys.Help, m.keys.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.Add, m.keys.Reset, m.keys.Help, m.keys.Quit}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.MoveUp, m.keys.MoveDown}
	actions := []key.Binding{m.keys.Toggle, m.keys.Focus, m.keys.Unfocus, m.keys.Pause, m.keys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

// newTaskForm builds the add-task form, offering existing category names as
// input suggestions.
func (m *Model) newTaskForm() {
	m.taskForm = &TaskFormModel{Today: m.pane == PaneToday}

	var names []string
	for _, cat := range m.tree.NonRoot() {
		names = append(names, cat.Name)
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&m.taskForm.Title),
		huh.NewInput().
			Title("Category").
			Description("Optional. A new name is created under Uncategorized.").
			Suggestions(names).
			Value(&m.taskForm.Category),
		huh.NewConfirm().
			Title("Add to today's focus?").
			Value(&m.taskForm.Today),
	))
}
