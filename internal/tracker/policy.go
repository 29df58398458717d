package tracker

import (
	"sort"

	"github.com/maxgreen/daykeep/internal/models"
)

// Activation policy. Both project modes cap concurrent active tasks at one:
// ordered projects promote in creation sequence automatically, unordered
// projects promote only on request, but never past the cap. The decision
// functions here are pure; the Service applies their results to the store.

// TasksForProject returns the todos belonging to the project, sorted by id.
// Todo ids sort lexicographically in creation order (see models.IDGenerator),
// so the first eligible task is always the oldest.
func TasksForProject(todos []models.Todo, projectID string) []models.Todo {
	var tasks []models.Todo
	for _, t := range todos {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

// ActiveIncompleteCount returns the number of tasks counted against the
// project's activation cap.
func ActiveIncompleteCount(tasks []models.Todo) int {
	n := 0
	for _, t := range tasks {
		if t.Active && !t.Completed {
			n++
		}
	}
	return n
}

// NextEligible selects the task to promote when an activation opportunity
// arises: the lowest-id task that is neither completed nor active. No task is
// promoted while another is active and incomplete.
func NextEligible(tasks []models.Todo) (models.Todo, bool) {
	if ActiveIncompleteCount(tasks) > 0 {
		return models.Todo{}, false
	}
	for _, t := range tasks {
		if t.Eligible() {
			return t, true
		}
	}
	return models.Todo{}, false
}

// CanActivateDirectly reports whether a specific task may be manually
// activated, bypassing next-task selection. Unordered projects block this
// while a sibling task is active and incomplete. Ordered projects allow it:
// manual activation is treated as a deliberate override of the sequence.
func CanActivateDirectly(project models.Project, tasks []models.Todo, id string) bool {
	if project.Ordered {
		return true
	}
	for _, t := range tasks {
		if t.ID != id && t.Active && !t.Completed {
			return false
		}
	}
	return true
}
