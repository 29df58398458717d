package tracker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBeginSession(t *testing.T) {
	t.Run("first run sets the date without a transition", func(t *testing.T) {
		// newTestService already ran the first session.
		svc, _ := newTestService(t)
		date, err := svc.Store().GetCurrentDate()
		if err != nil {
			t.Fatal(err)
		}
		if date != svc.CurrentDate() {
			t.Errorf("persisted date = %s, want %s", date, svc.CurrentDate())
		}
	})

	t.Run("same day yields no transition", func(t *testing.T) {
		svc, _ := newTestService(t)
		transition, err := svc.BeginSession()
		if err != nil {
			t.Fatal(err)
		}
		if transition != nil {
			t.Errorf("BeginSession() = %+v, want nil transition on same day", transition)
		}
	})

	t.Run("date change stages a frozen snapshot", func(t *testing.T) {
		svc, clock := newTestService(t)
		previous := svc.CurrentDate()
		todo, err := svc.AddTodo("carry me", "")
		if err != nil {
			t.Fatal(err)
		}

		clock.AdvanceDays(1)
		transition, err := svc.BeginSession()
		if err != nil {
			t.Fatal(err)
		}
		if transition == nil {
			t.Fatal("BeginSession() = nil, want transition after date change")
		}
		if transition.PreviousDate != previous {
			t.Errorf("PreviousDate = %s, want %s", transition.PreviousDate, previous)
		}
		if len(transition.Todos) != 1 || transition.Todos[0].ID != todo.ID {
			t.Errorf("snapshot todos = %v, want the carried todo", transition.Todos)
		}

		// The date is advanced regardless of how the transition is resolved,
		// so a second session does not re-prompt.
		again, err := svc.BeginSession()
		if err != nil {
			t.Fatal(err)
		}
		if again != nil {
			t.Error("BeginSession() re-prompted after the date was advanced")
		}
	})
}

func TestStartNewDay(t *testing.T) {
	svc, clock := newTestService(t)
	oldDate := svc.CurrentDate()

	done, err := svc.AddTodo("done yesterday", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleTodo(done.ID); err != nil {
		t.Fatal(err)
	}
	open, err := svc.AddTodo("still open", "")
	if err != nil {
		t.Fatal(err)
	}
	habit, err := svc.AddHabit("stretch")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleHabit(habit.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFoodEntry("oats", 320, 12); err != nil {
		t.Fatal(err)
	}
	project, _, err := svc.AddProject("P", "keep me", "", false)
	if err != nil {
		t.Fatal(err)
	}

	clock.AdvanceDays(1)
	if _, err := svc.BeginSession(); err != nil {
		t.Fatal(err)
	}
	if err := svc.StartNewDay(); err != nil {
		t.Fatalf("StartNewDay() returned unexpected error: %v", err)
	}
	today := svc.CurrentDate()

	gotDone, _ := svc.Store().GetTodo(done.ID)
	if gotDone.Timestamp != oldDate {
		t.Errorf("completed todo re-stamped to %s, want original %s", gotDone.Timestamp, oldDate)
	}
	gotOpen, _ := svc.Store().GetTodo(open.ID)
	if gotOpen.Timestamp != today {
		t.Errorf("incomplete todo stamped %s, want %s", gotOpen.Timestamp, today)
	}

	gotHabit, _ := svc.Store().GetHabit(habit.ID)
	if gotHabit.Completed {
		t.Error("habit completion not reset")
	}
	if gotHabit.Streak != 1 {
		t.Errorf("habit streak = %d, want 1 (unchanged by rollover)", gotHabit.Streak)
	}
	if gotHabit.Timestamp != today {
		t.Errorf("habit stamped %s, want %s", gotHabit.Timestamp, today)
	}

	entries, _ := svc.FoodEntries()
	if len(entries) != 0 {
		t.Errorf("food entries = %d, want 0 after new day", len(entries))
	}

	gotProject, err := svc.Store().GetProject(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(project, gotProject); diff != "" {
		t.Errorf("project changed by new-day transform (-want +got):\n%s", diff)
	}

	date, _ := svc.Store().GetCurrentDate()
	if date != today {
		t.Errorf("persisted date = %s, want %s", date, today)
	}
}

func TestKeepPreviousDay(t *testing.T) {
	svc, clock := newTestService(t)
	todo, err := svc.AddTodo("stale", "")
	if err != nil {
		t.Fatal(err)
	}

	clock.AdvanceDays(1)
	if _, err := svc.BeginSession(); err != nil {
		t.Fatal(err)
	}
	if err := svc.KeepPreviousDay(); err != nil {
		t.Fatal(err)
	}

	// Data untouched: the stale todo keeps its old stamp and falls out of
	// today's views.
	got, _ := svc.Store().GetTodo(todo.ID)
	if got.Timestamp == svc.CurrentDate() {
		t.Error("KeepPreviousDay() re-stamped a todo")
	}
	today, err := svc.TodosForToday()
	if err != nil {
		t.Fatal(err)
	}
	if len(today) != 0 {
		t.Errorf("today's todos = %d, want 0 after keeping previous data", len(today))
	}
}
