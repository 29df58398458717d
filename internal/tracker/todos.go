package tracker

import (
	"fmt"
	"strings"

	"github.com/maxgreen/daykeep/internal/logger"
	"github.com/maxgreen/daykeep/internal/models"
)

// AddTodo creates a standalone todo. Standalone todos start active; project
// membership is optional and does not change that default here (bulk project
// imports decide activation themselves, see AddProject).
func (s *Service) AddTodo(text, projectID string) (models.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Todo{}, ErrEmptyText
	}
	if projectID != "" {
		if _, err := s.store.GetProject(projectID); err != nil {
			return models.Todo{}, err
		}
	}

	todo := models.Todo{
		ID:        s.ids.Next(),
		Text:      text,
		Timestamp: s.CurrentDate(),
		ProjectID: projectID,
		Active:    true,
	}
	if err := s.store.AddTodo(todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// ToggleTodo flips completion. Completing a project task immediately invokes
// the activation policy for that project as the second step of the same
// logical transaction, so the next eligible task is promoted before any
// other mutation can interleave.
func (s *Service) ToggleTodo(id string) (models.Todo, error) {
	todo, err := s.store.GetTodo(id)
	if err != nil {
		return models.Todo{}, err
	}

	wasCompleted := todo.Completed
	todo.Completed = !todo.Completed
	if err := s.store.UpdateTodo(todo); err != nil {
		return models.Todo{}, err
	}

	if !wasCompleted && todo.Completed && todo.ProjectID != "" {
		if _, _, err := s.activateNext(todo.ProjectID); err != nil {
			return models.Todo{}, fmt.Errorf("post-completion activation failed: %w", err)
		}
	}

	return todo, nil
}

// ActivateTodo manually activates a specific task. For tasks in unordered
// projects this is rejected while a sibling task is active and incomplete.
func (s *Service) ActivateTodo(id string) error {
	todo, err := s.store.GetTodo(id)
	if err != nil {
		return err
	}

	if todo.ProjectID != "" {
		project, err := s.store.GetProject(todo.ProjectID)
		if err != nil {
			// Dangling project reference; nothing to enforce.
			logger.Debug("Activating task with missing project", "todo", id, "project", todo.ProjectID)
		} else {
			todos, err := s.store.GetAllTodos()
			if err != nil {
				return err
			}
			tasks := TasksForProject(todos, todo.ProjectID)
			if !CanActivateDirectly(project, tasks, id) {
				return ErrProjectTaskActive
			}
		}
	}

	todo.Active = true
	return s.store.UpdateTodo(todo)
}

// DeactivateTodo returns a task to the dormant pool. There is no policy
// gating on the way down.
func (s *Service) DeactivateTodo(id string) error {
	todo, err := s.store.GetTodo(id)
	if err != nil {
		return err
	}
	todo.Active = false
	return s.store.UpdateTodo(todo)
}

// RenameTodo is the inline quick-edit path: text only.
func (s *Service) RenameTodo(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	todo, err := s.store.GetTodo(id)
	if err != nil {
		return err
	}
	todo.Text = text
	return s.store.UpdateTodo(todo)
}

// UpdateTodo is the detail-edit path: whole-record replacement by id. Text,
// notes, completion, and project membership may all change.
func (s *Service) UpdateTodo(todo models.Todo) error {
	todo.Text = strings.TrimSpace(todo.Text)
	if todo.Text == "" {
		return ErrEmptyText
	}
	if todo.ProjectID != "" {
		if _, err := s.store.GetProject(todo.ProjectID); err != nil {
			return err
		}
	}
	return s.store.UpdateTodo(todo)
}

// MoveTodo reassigns a task to another project, or to none.
func (s *Service) MoveTodo(id, projectID string) error {
	todo, err := s.store.GetTodo(id)
	if err != nil {
		return err
	}
	if projectID != "" {
		if _, err := s.store.GetProject(projectID); err != nil {
			return err
		}
	}
	todo.ProjectID = projectID
	return s.store.UpdateTodo(todo)
}

// DeleteTodo removes a task unconditionally.
func (s *Service) DeleteTodo(id string) error {
	return s.store.DeleteTodo(id)
}

// Todos returns the full todo collection.
func (s *Service) Todos() ([]models.Todo, error) {
	return s.store.GetAllTodos()
}

// TodosForToday returns todos stamped with the current date, completed or not.
func (s *Service) TodosForToday() ([]models.Todo, error) {
	todos, err := s.store.GetAllTodos()
	if err != nil {
		return nil, err
	}
	date := s.CurrentDate()
	var out []models.Todo
	for _, t := range todos {
		if t.Timestamp == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// ActiveWorkingSet returns the day's working set: active todos stamped with
// the current date whose project (if any) is itself active. Completed items
// stay in the set; presentation strikes them through rather than hiding them.
func (s *Service) ActiveWorkingSet() ([]models.Todo, error) {
	todos, err := s.store.GetAllTodos()
	if err != nil {
		return nil, err
	}
	projects, err := s.store.GetAllProjects()
	if err != nil {
		return nil, err
	}
	projectActive := make(map[string]bool, len(projects))
	for _, p := range projects {
		projectActive[p.ID] = p.Active
	}

	date := s.CurrentDate()
	var out []models.Todo
	for _, t := range todos {
		if t.Timestamp != date || !t.Active {
			continue
		}
		if t.ProjectID != "" {
			if active, ok := projectActive[t.ProjectID]; ok && !active {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// PoolTodos returns all incomplete todos, the task-pool view.
func (s *Service) PoolTodos() ([]models.Todo, error) {
	todos, err := s.store.GetAllTodos()
	if err != nil {
		return nil, err
	}
	var out []models.Todo
	for _, t := range todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}
