package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabTitles = []string{"Today", "Pool", "Projects", "Habits", "Food"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateTransition, StateAddTodo, StateAddProject, StateAddHabit, StateAddFood:
		return docStyle.Render(m.form.View())
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StatePool:
		content = m.viewPool()
	case StateProjects:
		content = m.viewProjects()
	case StateHabits:
		content = m.viewHabits()
	case StateFood:
		content = m.viewFood()
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, errStyle.Render("Error: "+m.errMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	date := inactiveTabStyle.Render(m.summary.Date)
	return lipgloss.JoinHorizontal(lipgloss.Top, row, date)
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Today  %d/%d todos  %d/%d habits  %.0f kcal",
		m.summary.TodosCompleted, m.summary.TodosTotal,
		m.summary.HabitsCompleted, m.summary.HabitsTotal,
		m.summary.Calories)))
	b.WriteString("\n\n")

	if len(m.todos) == 0 {
		b.WriteString("Nothing active today. Press 'a' to add a todo.\n")
		return docStyle.Render(b.String())
	}

	for i, t := range m.todos {
		line := fmt.Sprintf("%s %s", checkbox(t.Completed), t.Text)
		if name := m.projectName(t.ProjectID); name != "" {
			line += badgeStyle.Render("  [" + name + "]")
		}
		if t.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(m.cursorPrefix(i) + line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewPool() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Task Pool"))
	b.WriteString("\n\n")

	if len(m.pool) == 0 {
		b.WriteString("The pool is empty.\n")
		return docStyle.Render(b.String())
	}

	for i, t := range m.pool {
		line := t.Text
		if name := m.projectName(t.ProjectID); name != "" {
			line += badgeStyle.Render("  [" + name + "]")
		}
		b.WriteString(m.cursorPrefix(i) + line + "\n")
	}
	b.WriteString("\nPress 's' to activate the selected task.\n")
	return docStyle.Render(b.String())
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Projects"))
	b.WriteString("\n\n")

	if len(m.projects) == 0 {
		b.WriteString("No projects yet. Press 'a' to create one.\n")
		return docStyle.Render(b.String())
	}

	for i, p := range m.projects {
		status := "active"
		if !p.Active {
			status = "paused"
		}
		mode := "unordered"
		if p.Ordered {
			mode = "ordered"
		}

		stats, err := m.tracker.ProjectStats(p.ID)
		line := fmt.Sprintf("%s (%s, %s)", p.Name, status, mode)
		if err == nil {
			line = fmt.Sprintf("%s (%s, %s, %d/%d done)", p.Name, status, mode, stats.Completed, stats.Total)
		}
		if !p.Active {
			line = doneStyle.Render(line)
		}
		b.WriteString(m.cursorPrefix(i) + line + "\n")
	}
	b.WriteString("\nPress 'n' to promote the project's next task.\n")
	return docStyle.Render(b.String())
}

func (m Model) viewHabits() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Habits"))
	b.WriteString("\n\n")

	if len(m.habits) == 0 {
		b.WriteString("No habits yet. Press 'a' to add one.\n")
		return docStyle.Render(b.String())
	}

	today := m.summary.Date
	for i, h := range m.habits {
		done := h.Completed && h.Timestamp == today
		line := fmt.Sprintf("%s %s  (streak: %d)", checkbox(done), h.Name, h.Streak)
		if done {
			line = doneStyle.Render(line)
		}
		b.WriteString(m.cursorPrefix(i) + line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewFood() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Food  %.0f kcal  %.0fg protein",
		m.summary.Calories, m.summary.Protein)))
	b.WriteString("\n\n")

	if len(m.food) == 0 {
		b.WriteString("No food logged today. Press 'a' to log a meal.\n")
		return docStyle.Render(b.String())
	}

	for i, e := range m.food {
		line := fmt.Sprintf("%s  %-25s %6.0f kcal  %5.0fg", e.Time, e.Name, e.Calories, e.Protein)
		b.WriteString(m.cursorPrefix(i) + line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this item?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) cursorPrefix(i int) string {
	if i == m.cursor {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func (m Model) projectName(id string) string {
	if id == "" {
		return ""
	}
	for _, p := range m.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
