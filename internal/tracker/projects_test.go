package tracker

import (
	"errors"
	"testing"
)

func TestAddProjectOrdered(t *testing.T) {
	svc, _ := newTestService(t)

	_, tasks, err := svc.AddProject("Site redesign", "", "A\nB\n\n  C  \n", true)
	if err != nil {
		t.Fatalf("AddProject() returned unexpected error: %v", err)
	}

	wantTexts := []string{"1. A", "2. B", "3. C"}
	if len(tasks) != len(wantTexts) {
		t.Fatalf("AddProject() created %d tasks, want %d", len(tasks), len(wantTexts))
	}
	for i, want := range wantTexts {
		if tasks[i].Text != want {
			t.Errorf("task %d text = %q, want %q", i, tasks[i].Text, want)
		}
	}
	if !tasks[0].Active {
		t.Error("first ordered task should start active")
	}
	for _, task := range tasks[1:] {
		if task.Active {
			t.Errorf("task %q should start inactive", task.Text)
		}
	}
}

func TestAddProjectUnordered(t *testing.T) {
	svc, _ := newTestService(t)

	_, tasks, err := svc.AddProject("Chores", "around the house", "A\nB\nC", false)
	if err != nil {
		t.Fatalf("AddProject() returned unexpected error: %v", err)
	}

	for _, task := range tasks {
		if task.Active {
			t.Errorf("unordered task %q should start inactive", task.Text)
		}
		if task.Text != "A" && task.Text != "B" && task.Text != "C" {
			t.Errorf("unordered task text = %q, want no numbering prefix", task.Text)
		}
	}
}

func TestAddProjectValidation(t *testing.T) {
	svc, _ := newTestService(t)
	if _, _, err := svc.AddProject("   ", "", "", false); !errors.Is(err, ErrEmptyName) {
		t.Errorf("AddProject(blank) error = %v, want ErrEmptyName", err)
	}
}

func TestActivateNextTask(t *testing.T) {
	t.Run("promotes oldest eligible when none active", func(t *testing.T) {
		svc, _ := newTestService(t)
		project, tasks, err := svc.AddProject("P", "", "A\nB", false)
		if err != nil {
			t.Fatal(err)
		}

		next, ok, err := svc.ActivateNextTask(project.ID)
		if err != nil || !ok {
			t.Fatalf("ActivateNextTask() = %v, %v, want promotion", ok, err)
		}
		if next.ID != tasks[0].ID {
			t.Errorf("promoted %s, want oldest task %s", next.ID, tasks[0].ID)
		}
	})

	t.Run("does nothing while a task is active", func(t *testing.T) {
		svc, _ := newTestService(t)
		project, _, err := svc.AddProject("P", "", "A\nB", true)
		if err != nil {
			t.Fatal(err)
		}

		// First ordered task already started active.
		if _, ok, _ := svc.ActivateNextTask(project.ID); ok {
			t.Error("ActivateNextTask() promoted past the activation cap")
		}
	})

	t.Run("missing project is an error for explicit requests", func(t *testing.T) {
		svc, _ := newTestService(t)
		if _, _, err := svc.ActivateNextTask("nope"); err == nil {
			t.Error("ActivateNextTask(missing) = nil error, want not found")
		}
	})
}

func TestActivationCapHolds(t *testing.T) {
	for _, ordered := range []bool{true, false} {
		name := "unordered"
		if ordered {
			name = "ordered"
		}
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t)
			project, tasks, err := svc.AddProject("P", "", "A\nB\nC\nD", ordered)
			if err != nil {
				t.Fatal(err)
			}

			// Drive the project to completion, checking the invariant after
			// every mutation.
			for range tasks {
				svc.ActivateNextTask(project.ID)
				assertActiveCap(t, svc, project.ID)

				all, _ := svc.Todos()
				projTasks := TasksForProject(all, project.ID)
				for _, task := range projTasks {
					if task.Active && !task.Completed {
						if _, err := svc.ToggleTodo(task.ID); err != nil {
							t.Fatal(err)
						}
						break
					}
				}
				assertActiveCap(t, svc, project.ID)
			}

			all, _ := svc.Todos()
			for _, task := range TasksForProject(all, project.ID) {
				if !task.Completed {
					t.Errorf("task %q left incomplete after drain", task.Text)
				}
			}
		})
	}
}

func assertActiveCap(t *testing.T, svc *Service, projectID string) {
	t.Helper()
	all, err := svc.Todos()
	if err != nil {
		t.Fatal(err)
	}
	if n := ActiveIncompleteCount(TasksForProject(all, projectID)); n > 1 {
		t.Fatalf("project has %d active-incomplete tasks, cap is 1", n)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	svc, _ := newTestService(t)

	keep, err := svc.AddTodo("standalone", "")
	if err != nil {
		t.Fatal(err)
	}
	project, _, err := svc.AddProject("Doomed", "", "A\nB\nC", false)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteProject(project.ID); err != nil {
		t.Fatalf("DeleteProject() returned unexpected error: %v", err)
	}

	todos, err := svc.Todos()
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 1 || todos[0].ID != keep.ID {
		t.Errorf("after cascade, todos = %v, want only the standalone todo", todos)
	}
	if _, err := svc.Store().GetProject(project.ID); err == nil {
		t.Error("deleted project still present")
	}
}

func TestProjectStats(t *testing.T) {
	svc, _ := newTestService(t)
	project, tasks, err := svc.AddProject("P", "", "A\nB\nC", true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleTodo(tasks[0].ID); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.ProjectStats(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Completing task A cascaded activation to task B.
	want := ProjectStats{Total: 3, Completed: 1, Active: 2}
	if stats != want {
		t.Errorf("ProjectStats() = %+v, want %+v", stats, want)
	}
}

func TestToggleProject(t *testing.T) {
	svc, _ := newTestService(t)
	project, _, err := svc.AddProject("P", "", "", false)
	if err != nil {
		t.Fatal(err)
	}
	toggled, err := svc.ToggleProject(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Active {
		t.Error("ToggleProject() left project active, want inactive")
	}
}
