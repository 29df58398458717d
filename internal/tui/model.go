package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/maxgreen/daykeep/internal/models"
	"github.com/maxgreen/daykeep/internal/tracker"
)

type SessionState int

const (
	StateToday SessionState = iota
	StatePool
	StateProjects
	StateHabits
	StateFood
	StateTransition
	StateAddTodo
	StateAddProject
	StateAddHabit
	StateAddFood
	StateConfirmDelete
)

// tabCount covers the browsable tabs; the remaining states are modal.
const tabCount = 5

type TodoFormModel struct {
	Text    string
	Project string
}

// TransitionFormModel holds the day-rollover choice. It must live behind a
// pointer: bubbletea copies the model on every update, and huh writes the
// user's answer through the pointer bound at construction time.
type TransitionFormModel struct {
	StartNew bool
}

type ProjectFormModel struct {
	Name        string
	Description string
	Tasks       string
	Ordered     bool
}

type HabitFormModel struct {
	Name string
}

type FoodFormModel struct {
	Name     string
	Calories string
	Protein  string
}

type Model struct {
	tracker       *tracker.Service
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	todos    []models.Todo
	pool     []models.Todo
	projects []models.Project
	habits   []models.Habit
	food     []models.FoodEntry
	summary  tracker.DaySummary

	cursor int

	form           *huh.Form
	todoForm       *TodoFormModel
	projectForm    *ProjectFormModel
	habitForm      *HabitFormModel
	foodForm       *FoodFormModel
	transitionForm *TransitionFormModel

	deleteID    string
	deleteState SessionState

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(svc *tracker.Service, transition *tracker.DayTransition) Model {
	m := Model{
		tracker: svc,
		state:   StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()

	if transition != nil {
		m.previousState = StateToday
		m.transitionForm = &TransitionFormModel{}
		m.form = NewTransitionForm(transition.PreviousDate, &m.transitionForm.StartNew)
		m.state = StateTransition
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// refresh reloads every tab's data from the tracker.
func (m *Model) refresh() {
	m.errMsg = ""

	var err error
	if m.todos, err = m.tracker.ActiveWorkingSet(); err != nil {
		m.errMsg = err.Error()
	}
	if m.pool, err = m.tracker.PoolTodos(); err != nil {
		m.errMsg = err.Error()
	}
	if m.projects, err = m.tracker.Projects(); err != nil {
		m.errMsg = err.Error()
	}
	if m.habits, err = m.tracker.Habits(); err != nil {
		m.errMsg = err.Error()
	}
	if m.food, err = m.tracker.FoodEntriesForToday(); err != nil {
		m.errMsg = err.Error()
	}
	if m.summary, err = m.tracker.Summary(); err != nil {
		m.errMsg = err.Error()
	}
	m.clampCursor()
}

// listLen returns the item count of the current tab.
func (m Model) listLen() int {
	switch m.state {
	case StateToday:
		return len(m.todos)
	case StatePool:
		return len(m.pool)
	case StateProjects:
		return len(m.projects)
	case StateHabits:
		return len(m.habits)
	case StateFood:
		return len(m.food)
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.listLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday, StateHabits, StateFood:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	case StatePool:
		keys = append(keys, m.keys.Activate, m.keys.Add, m.keys.Delete)
	case StateProjects:
		keys = append(keys, m.keys.Enter, m.keys.Next, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	actions := []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Activate, m.keys.Next}
	return [][]key.Binding{global, navigation, actions}
}
