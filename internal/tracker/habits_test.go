package tracker

import (
	"errors"
	"testing"
)

func TestToggleHabitStreak(t *testing.T) {
	svc, _ := newTestService(t)
	habit, err := svc.AddHabit("meditate")
	if err != nil {
		t.Fatalf("AddHabit() returned unexpected error: %v", err)
	}
	if habit.Streak != 0 {
		t.Fatalf("new habit streak = %d, want 0", habit.Streak)
	}

	t.Run("complete increments", func(t *testing.T) {
		got, err := svc.ToggleHabit(habit.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Completed || got.Streak != 1 {
			t.Errorf("after toggle: completed=%v streak=%d, want true/1", got.Completed, got.Streak)
		}
		if got.Timestamp != svc.CurrentDate() {
			t.Errorf("habit stamped %s, want %s", got.Timestamp, svc.CurrentDate())
		}
	})

	t.Run("un-complete restores the original streak", func(t *testing.T) {
		got, err := svc.ToggleHabit(habit.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Completed || got.Streak != 0 {
			t.Errorf("after toggle back: completed=%v streak=%d, want false/0", got.Completed, got.Streak)
		}
	})
}

func TestToggleHabitStreakFloor(t *testing.T) {
	svc, _ := newTestService(t)
	habit, err := svc.AddHabit("floss")
	if err != nil {
		t.Fatal(err)
	}

	// Force the completed-with-zero-streak state a rollover produces, then
	// make sure un-completing can't push the streak negative.
	habit.Completed = true
	habit.Streak = 0
	if err := svc.Store().UpdateHabit(habit); err != nil {
		t.Fatal(err)
	}

	got, err := svc.ToggleHabit(habit.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Streak != 0 {
		t.Errorf("streak = %d, want floor of 0", got.Streak)
	}
}

func TestHabitValidation(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.AddHabit("  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("AddHabit(blank) error = %v, want ErrEmptyName", err)
	}
	if err := svc.RenameHabit("missing", "x"); err == nil {
		t.Error("RenameHabit(missing) = nil error, want not found")
	}
}
