package tracker

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maxgreen/daykeep/internal/models"
)

func TestAddTodo(t *testing.T) {
	t.Run("standalone todo starts active", func(t *testing.T) {
		svc, _ := newTestService(t)
		todo, err := svc.AddTodo("write report", "")
		if err != nil {
			t.Fatalf("AddTodo() returned unexpected error: %v", err)
		}
		if !todo.Active {
			t.Error("standalone todo should start active")
		}
		if todo.Completed {
			t.Error("new todo should start incomplete")
		}
		if todo.Timestamp != svc.CurrentDate() {
			t.Errorf("todo stamped %s, want %s", todo.Timestamp, svc.CurrentDate())
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		if _, err := svc.AddTodo("   ", ""); !errors.Is(err, ErrEmptyText) {
			t.Errorf("AddTodo(blank) error = %v, want ErrEmptyText", err)
		}
		todos, _ := svc.Todos()
		if len(todos) != 0 {
			t.Error("rejected todo was still stored")
		}
	})

	t.Run("unknown project rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		if _, err := svc.AddTodo("x", "missing"); err == nil {
			t.Error("AddTodo() with unknown project = nil error, want not found")
		}
	})
}

func TestToggleTodoCascade(t *testing.T) {
	t.Run("completing the active ordered task promotes the next", func(t *testing.T) {
		svc, _ := newTestService(t)
		project, tasks, err := svc.AddProject("P", "", "A\nB\nC", true)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := svc.ToggleTodo(tasks[0].ID); err != nil {
			t.Fatalf("ToggleTodo() returned unexpected error: %v", err)
		}

		all, _ := svc.Todos()
		projTasks := TasksForProject(all, project.ID)
		var active []string
		for _, task := range projTasks {
			if task.Active && !task.Completed {
				active = append(active, task.Text)
			}
		}
		want := []string{"2. B"}
		if diff := cmp.Diff(want, active); diff != "" {
			t.Errorf("active-incomplete tasks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("un-completing does not trigger activation", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, tasks, err := svc.AddProject("P", "", "A\nB", false)
		if err != nil {
			t.Fatal(err)
		}

		// Complete then un-complete A without any task being active.
		if _, err := svc.ToggleTodo(tasks[0].ID); err != nil {
			t.Fatal(err)
		}
		// Completing A promoted B. Un-complete A; B must stay the only
		// active task and A must not be re-promoted.
		if _, err := svc.ToggleTodo(tasks[0].ID); err != nil {
			t.Fatal(err)
		}

		a, _ := svc.Store().GetTodo(tasks[0].ID)
		if a.Active {
			t.Error("un-completed task was re-activated")
		}
	})

	t.Run("standalone completion has no cascade", func(t *testing.T) {
		svc, _ := newTestService(t)
		todo, err := svc.AddTodo("solo", "")
		if err != nil {
			t.Fatal(err)
		}
		got, err := svc.ToggleTodo(todo.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Completed {
			t.Error("ToggleTodo() did not complete the todo")
		}
	})
}

func TestActivateTodo(t *testing.T) {
	t.Run("unordered conflict is a blocking error", func(t *testing.T) {
		svc, _ := newTestService(t)
		project, tasks, err := svc.AddProject("P", "", "A\nB", false)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := svc.ActivateNextTask(project.ID); err != nil {
			t.Fatal(err)
		}

		err = svc.ActivateTodo(tasks[1].ID)
		if !errors.Is(err, ErrProjectTaskActive) {
			t.Fatalf("ActivateTodo() error = %v, want ErrProjectTaskActive", err)
		}

		// State unchanged.
		b, _ := svc.Store().GetTodo(tasks[1].ID)
		if b.Active {
			t.Error("rejected activation still mutated the task")
		}
	})

	t.Run("ordered project allows manual override", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, tasks, err := svc.AddProject("P", "", "A\nB", true)
		if err != nil {
			t.Fatal(err)
		}
		// A is active; activating B directly is permitted.
		if err := svc.ActivateTodo(tasks[1].ID); err != nil {
			t.Errorf("ActivateTodo() on ordered project = %v, want nil", err)
		}
	})

	t.Run("standalone task activates freely", func(t *testing.T) {
		svc, _ := newTestService(t)
		todo, err := svc.AddTodo("solo", "")
		if err != nil {
			t.Fatal(err)
		}
		if err := svc.DeactivateTodo(todo.ID); err != nil {
			t.Fatal(err)
		}
		if err := svc.ActivateTodo(todo.ID); err != nil {
			t.Errorf("ActivateTodo() = %v, want nil", err)
		}
	})
}

func TestDeactivateTodo(t *testing.T) {
	svc, _ := newTestService(t)
	todo, err := svc.AddTodo("solo", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeactivateTodo(todo.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := svc.Store().GetTodo(todo.ID)
	if got.Active {
		t.Error("DeactivateTodo() left the task active")
	}
}

func TestUpdateTodo(t *testing.T) {
	svc, _ := newTestService(t)
	project, _, err := svc.AddProject("P", "", "", false)
	if err != nil {
		t.Fatal(err)
	}
	todo, err := svc.AddTodo("draft", "")
	if err != nil {
		t.Fatal(err)
	}

	todo.Text = "final"
	todo.Notes = "ship it"
	todo.ProjectID = project.ID
	todo.Completed = true
	if err := svc.UpdateTodo(todo); err != nil {
		t.Fatalf("UpdateTodo() returned unexpected error: %v", err)
	}

	got, _ := svc.Store().GetTodo(todo.ID)
	if diff := cmp.Diff(todo, got); diff != "" {
		t.Errorf("stored todo mismatch (-want +got):\n%s", diff)
	}

	t.Run("blank text rejected", func(t *testing.T) {
		todo.Text = " "
		if err := svc.UpdateTodo(todo); !errors.Is(err, ErrEmptyText) {
			t.Errorf("UpdateTodo(blank) error = %v, want ErrEmptyText", err)
		}
	})
}

func TestRenameTodo(t *testing.T) {
	svc, _ := newTestService(t)
	todo, err := svc.AddTodo("draft", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.RenameTodo(todo.ID, "  final  "); err != nil {
		t.Fatalf("RenameTodo() returned unexpected error: %v", err)
	}
	got, _ := svc.Store().GetTodo(todo.ID)
	if got.Text != "final" {
		t.Errorf("Text = %q, want final", got.Text)
	}

	if err := svc.RenameTodo(todo.ID, "   "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("RenameTodo(blank) error = %v, want ErrEmptyText", err)
	}
}

func TestActiveWorkingSet(t *testing.T) {
	svc, _ := newTestService(t)

	project, tasks, err := svc.AddProject("P", "", "A", true)
	if err != nil {
		t.Fatal(err)
	}
	solo, err := svc.AddTodo("solo", "")
	if err != nil {
		t.Fatal(err)
	}
	dormant, err := svc.AddTodo("dormant", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeactivateTodo(dormant.ID); err != nil {
		t.Fatal(err)
	}

	ids := func(todos []models.Todo) []string {
		var out []string
		for _, todo := range todos {
			out = append(out, todo.ID)
		}
		return out
	}

	set, err := svc.ActiveWorkingSet()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{tasks[0].ID, solo.ID}
	if diff := cmp.Diff(want, ids(set)); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}

	t.Run("inactive project hides its tasks", func(t *testing.T) {
		if _, err := svc.ToggleProject(project.ID); err != nil {
			t.Fatal(err)
		}
		set, err := svc.ActiveWorkingSet()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{solo.ID}, ids(set)); diff != "" {
			t.Errorf("working set mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("completed tasks stay in the set", func(t *testing.T) {
		if _, err := svc.ToggleTodo(solo.ID); err != nil {
			t.Fatal(err)
		}
		set, err := svc.ActiveWorkingSet()
		if err != nil {
			t.Fatal(err)
		}
		found := false
		for _, todo := range set {
			if todo.ID == solo.ID {
				found = todo.Completed
			}
		}
		if !found {
			t.Error("completed todo dropped from working set")
		}
	})
}
