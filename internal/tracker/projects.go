package tracker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maxgreen/daykeep/internal/logger"
	"github.com/maxgreen/daykeep/internal/models"
)

// ProjectStats summarizes a project's task set.
type ProjectStats struct {
	Total     int
	Completed int
	Active    int
}

// AddProject creates a project and imports its initial tasks, one per
// non-blank line. Ordered projects get a "1. ", "2. ", ... prefix baked into
// the task text and only the first task starts active; unordered projects get
// no prefix and no active tasks. The ordering mode is fixed after creation.
func (s *Service) AddProject(name, description, taskLines string, ordered bool) (models.Project, []models.Todo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, nil, ErrEmptyName
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Active:      true,
		Timestamp:   s.CurrentDate(),
		Ordered:     ordered,
	}

	var tasks []models.Todo
	n := 0
	for _, line := range strings.Split(taskLines, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n++
		text := line
		if ordered {
			text = fmt.Sprintf("%d. %s", n, line)
		}
		tasks = append(tasks, models.Todo{
			ID:        s.ids.Next(),
			Text:      text,
			Timestamp: s.CurrentDate(),
			ProjectID: project.ID,
			Active:    ordered && n == 1,
		})
	}

	if err := s.store.AddProject(project); err != nil {
		return models.Project{}, nil, err
	}
	if len(tasks) > 0 {
		if err := s.store.AddTodos(tasks); err != nil {
			return models.Project{}, nil, err
		}
	}

	logger.Info("Created project", "name", name, "ordered", ordered, "tasks", len(tasks))
	return project, tasks, nil
}

// ToggleProject flips a project's active flag. An inactive project hides its
// tasks from the daily working set without deleting anything.
func (s *Service) ToggleProject(id string) (models.Project, error) {
	project, err := s.store.GetProject(id)
	if err != nil {
		return models.Project{}, err
	}
	project.Active = !project.Active
	if err := s.store.UpdateProject(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// UpdateProject edits name and description. The ordered flag has no edit path.
func (s *Service) UpdateProject(id, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	project, err := s.store.GetProject(id)
	if err != nil {
		return err
	}
	project.Name = name
	project.Description = strings.TrimSpace(description)
	return s.store.UpdateProject(project)
}

// DeleteProject removes the project and cascade-deletes every todo that
// references it.
func (s *Service) DeleteProject(id string) error {
	if err := s.store.DeleteProject(id); err != nil {
		return err
	}

	todos, err := s.store.GetAllTodos()
	if err != nil {
		return err
	}
	kept := todos[:0]
	for _, t := range todos {
		if t.ProjectID != id {
			kept = append(kept, t)
		}
	}
	if err := s.store.ReplaceTodos(kept); err != nil {
		return err
	}

	logger.Info("Deleted project with task cascade", "project", id, "remaining", len(kept))
	return nil
}

// ActivateNextTask promotes the project's next eligible task, if the project
// has no active-incomplete task. Returns the promoted task and whether a
// promotion happened.
func (s *Service) ActivateNextTask(projectID string) (models.Todo, bool, error) {
	if _, err := s.store.GetProject(projectID); err != nil {
		return models.Todo{}, false, err
	}
	return s.activateNext(projectID)
}

// activateNext is the shared activation trigger: explicit requests and the
// post-completion cascade both land here. A missing project (dangling
// reference) is not an error; there is simply nothing to promote.
func (s *Service) activateNext(projectID string) (models.Todo, bool, error) {
	if _, err := s.store.GetProject(projectID); err != nil {
		logger.Debug("Skipping activation for missing project", "project", projectID)
		return models.Todo{}, false, nil
	}

	todos, err := s.store.GetAllTodos()
	if err != nil {
		return models.Todo{}, false, err
	}
	tasks := TasksForProject(todos, projectID)
	next, ok := NextEligible(tasks)
	if !ok {
		return models.Todo{}, false, nil
	}

	next.Active = true
	if err := s.store.UpdateTodo(next); err != nil {
		return models.Todo{}, false, err
	}
	logger.Debug("Activated next task", "project", projectID, "todo", next.ID)
	return next, true, nil
}

// Projects returns the full project collection.
func (s *Service) Projects() ([]models.Project, error) {
	return s.store.GetAllProjects()
}

// ProjectStats counts the project's tasks by state.
func (s *Service) ProjectStats(projectID string) (ProjectStats, error) {
	todos, err := s.store.GetAllTodos()
	if err != nil {
		return ProjectStats{}, err
	}
	var stats ProjectStats
	for _, t := range todos {
		if t.ProjectID != projectID {
			continue
		}
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
		if t.Active {
			stats.Active++
		}
	}
	return stats, nil
}
