package tracker

import (
	"errors"
	"testing"
)

func TestAddFoodEntry(t *testing.T) {
	svc, _ := newTestService(t)

	entry, err := svc.AddFoodEntry("chicken salad", 420, 35)
	if err != nil {
		t.Fatalf("AddFoodEntry() returned unexpected error: %v", err)
	}
	if entry.Timestamp != svc.CurrentDate() {
		t.Errorf("entry stamped %s, want %s", entry.Timestamp, svc.CurrentDate())
	}
	if entry.Time == "" {
		t.Error("entry missing display time")
	}

	tests := []struct {
		name     string
		food     string
		calories float64
		protein  float64
		wantErr  error
	}{
		{"blank name", " ", 100, 0, ErrEmptyName},
		{"zero calories", "tea", 0, 0, ErrInvalidCalories},
		{"negative calories", "mystery", -5, 0, ErrInvalidCalories},
		{"negative protein", "shake", 200, -1, ErrInvalidProtein},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddFoodEntry(tt.food, tt.calories, tt.protein); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddFoodEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	entries, _ := svc.FoodEntries()
	if len(entries) != 1 {
		t.Errorf("stored entries = %d, want only the valid one", len(entries))
	}
}

func TestUpdateFoodEntry(t *testing.T) {
	svc, _ := newTestService(t)
	entry, err := svc.AddFoodEntry("soup", 150, 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateFoodEntry(entry.ID, "soup with bread", 300, 8); err != nil {
		t.Fatalf("UpdateFoodEntry() returned unexpected error: %v", err)
	}
	got, _ := svc.Store().GetFoodEntry(entry.ID)
	if got.Calories != 300 || got.Protein != 8 {
		t.Errorf("updated entry = %+v, want calories 300 protein 8", got)
	}
	if got.Time != entry.Time || got.Timestamp != entry.Timestamp {
		t.Error("UpdateFoodEntry() should keep the original time stamps")
	}

	if err := svc.UpdateFoodEntry(entry.ID, "x", 0, 0); !errors.Is(err, ErrInvalidCalories) {
		t.Errorf("UpdateFoodEntry(zero calories) error = %v, want ErrInvalidCalories", err)
	}
}

func TestSummary(t *testing.T) {
	svc, _ := newTestService(t)

	todo, err := svc.AddTodo("a", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddTodo("b", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleTodo(todo.ID); err != nil {
		t.Fatal(err)
	}
	habit, err := svc.AddHabit("run")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleHabit(habit.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFoodEntry("eggs", 180, 13); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFoodEntry("toast", 120, 4); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if summary.TodosTotal != 2 || summary.TodosCompleted != 1 {
		t.Errorf("todos = %d/%d, want 1/2", summary.TodosCompleted, summary.TodosTotal)
	}
	if summary.HabitsTotal != 1 || summary.HabitsCompleted != 1 {
		t.Errorf("habits = %d/%d, want 1/1", summary.HabitsCompleted, summary.HabitsTotal)
	}
	if summary.Calories != 300 || summary.Protein != 17 || summary.FoodEntries != 2 {
		t.Errorf("nutrition = %v cal %v protein %d entries, want 300/17/2",
			summary.Calories, summary.Protein, summary.FoodEntries)
	}
}
