package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/maxgreen/daykeep/internal/models"
)

// AddHabit creates a habit with a zero streak.
func (s *Service) AddHabit(name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyName
	}
	habit := models.Habit{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: s.CurrentDate(),
	}
	if err := s.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// ToggleHabit flips today's completion and moves the streak with it:
// completing increments, un-completing decrements with a floor of zero. The
// streak counts net completions, not consecutive calendar days.
func (s *Service) ToggleHabit(id string) (models.Habit, error) {
	habit, err := s.store.GetHabit(id)
	if err != nil {
		return models.Habit{}, err
	}

	if habit.Completed {
		if habit.Streak > 0 {
			habit.Streak--
		}
	} else {
		habit.Streak++
	}
	habit.Completed = !habit.Completed
	habit.Timestamp = s.CurrentDate()

	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// RenameHabit edits the habit name.
func (s *Service) RenameHabit(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	habit, err := s.store.GetHabit(id)
	if err != nil {
		return err
	}
	habit.Name = name
	return s.store.UpdateHabit(habit)
}

// DeleteHabit removes a habit unconditionally.
func (s *Service) DeleteHabit(id string) error {
	return s.store.DeleteHabit(id)
}

// Habits returns the full habit collection.
func (s *Service) Habits() ([]models.Habit, error) {
	return s.store.GetAllHabits()
}
