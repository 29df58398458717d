package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateTransition, StateAddTodo, StateAddProject, StateAddHabit, StateAddFood:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The transition prompt must be answered; every other form can be
	// abandoned with esc.
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc && m.state != StateTransition {
		m.form = nil
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
	case huh.StateAborted:
		if m.state == StateTransition {
			// Treat an aborted prompt as keeping the previous day.
			if err := m.tracker.KeepPreviousDay(); err != nil {
				m.errMsg = err.Error()
			}
			m.refresh()
		}
		m.form = nil
		m.state = m.previousState
	}
	return m, cmd
}

// applyForm commits the completed form's values through the tracker.
func (m *Model) applyForm() {
	var err error
	switch m.state {
	case StateTransition:
		if m.transitionForm.StartNew {
			err = m.tracker.StartNewDay()
		} else {
			err = m.tracker.KeepPreviousDay()
		}
	case StateAddTodo:
		_, err = m.tracker.AddTodo(m.todoForm.Text, m.todoForm.Project)
	case StateAddProject:
		_, _, err = m.tracker.AddProject(
			m.projectForm.Name, m.projectForm.Description,
			m.projectForm.Tasks, m.projectForm.Ordered)
	case StateAddHabit:
		_, err = m.tracker.AddHabit(m.habitForm.Name)
	case StateAddFood:
		calories, _ := strconv.ParseFloat(m.foodForm.Calories, 64)
		protein := 0.0
		if m.foodForm.Protein != "" {
			protein, _ = strconv.ParseFloat(m.foodForm.Protein, 64)
		}
		_, err = m.tracker.AddFoodEntry(m.foodForm.Name, calories, protein)
	}
	if err != nil {
		m.errMsg = err.Error()
	}

	m.form = nil
	m.state = m.previousState
	m.refresh()
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		var err error
		switch m.deleteState {
		case StateToday, StatePool:
			err = m.tracker.DeleteTodo(m.deleteID)
		case StateProjects:
			err = m.tracker.DeleteProject(m.deleteID)
		case StateHabits:
			err = m.tracker.DeleteHabit(m.deleteID)
		case StateFood:
			err = m.tracker.DeleteFoodEntry(m.deleteID)
		}
		if err != nil {
			m.errMsg = err.Error()
		}
		m.state = m.deleteState
		m.refresh()
	case "n", "N", "esc", "q":
		m.state = m.deleteState
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		m.cursor = 0
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		m.cursor = 0

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		m.toggleSelected()

	case key.Matches(msg, m.keys.Activate):
		m.activateSelected()

	case key.Matches(msg, m.keys.Next):
		if m.state == StateProjects && m.cursor < len(m.projects) {
			if _, _, err := m.tracker.ActivateNextTask(m.projects[m.cursor].ID); err != nil {
				m.errMsg = err.Error()
			}
			m.refresh()
		}

	case key.Matches(msg, m.keys.Add):
		return m.openAddForm()

	case key.Matches(msg, m.keys.Delete):
		if id := m.selectedID(); id != "" {
			m.deleteID = id
			m.deleteState = m.state
			m.state = StateConfirmDelete
		}
	}

	return m, nil
}

func (m *Model) toggleSelected() {
	var err error
	switch m.state {
	case StateToday:
		if m.cursor < len(m.todos) {
			_, err = m.tracker.ToggleTodo(m.todos[m.cursor].ID)
		}
	case StatePool:
		if m.cursor < len(m.pool) {
			err = m.tracker.ActivateTodo(m.pool[m.cursor].ID)
		}
	case StateProjects:
		if m.cursor < len(m.projects) {
			_, err = m.tracker.ToggleProject(m.projects[m.cursor].ID)
		}
	case StateHabits:
		if m.cursor < len(m.habits) {
			_, err = m.tracker.ToggleHabit(m.habits[m.cursor].ID)
		}
	}
	if err != nil {
		m.errMsg = err.Error()
	}
	m.refresh()
}

func (m *Model) activateSelected() {
	var err error
	switch m.state {
	case StateToday:
		if m.cursor < len(m.todos) {
			err = m.tracker.DeactivateTodo(m.todos[m.cursor].ID)
		}
	case StatePool:
		if m.cursor < len(m.pool) {
			err = m.tracker.ActivateTodo(m.pool[m.cursor].ID)
		}
	default:
		return
	}
	if err != nil {
		m.errMsg = err.Error()
	}
	m.refresh()
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	switch m.state {
	case StateToday, StatePool:
		m.todoForm = &TodoFormModel{}
		m.form = NewTodoForm(m.todoForm, m.projects)
		m.state = StateAddTodo
	case StateProjects:
		m.projectForm = &ProjectFormModel{}
		m.form = NewProjectForm(m.projectForm)
		m.state = StateAddProject
	case StateHabits:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.state = StateAddHabit
	case StateFood:
		m.foodForm = &FoodFormModel{}
		m.form = NewFoodForm(m.foodForm)
		m.state = StateAddFood
	default:
		return m, nil
	}
	return m, m.form.Init()
}

func (m Model) selectedID() string {
	switch m.state {
	case StateToday:
		if m.cursor < len(m.todos) {
			return m.todos[m.cursor].ID
		}
	case StatePool:
		if m.cursor < len(m.pool) {
			return m.pool[m.cursor].ID
		}
	case StateProjects:
		if m.cursor < len(m.projects) {
			return m.projects[m.cursor].ID
		}
	case StateHabits:
		if m.cursor < len(m.habits) {
			return m.habits[m.cursor].ID
		}
	case StateFood:
		if m.cursor < len(m.food) {
			return m.food[m.cursor].ID
		}
	}
	return ""
}
