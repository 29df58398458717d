package tracker

import (
	"github.com/maxgreen/daykeep/internal/logger"
	"github.com/maxgreen/daykeep/internal/models"
)

// DayTransition is the frozen snapshot of the collections as they stood when
// a date boundary was detected, offered to the user before any resolution.
type DayTransition struct {
	PreviousDate string
	Todos        []models.Todo
	Habits       []models.Habit
	FoodEntries  []models.FoodEntry
	Projects     []models.Project
}

// BeginSession runs once before anything else observes state. It compares the
// persisted current date against today and returns a non-nil DayTransition
// when they differ, leaving the collections untouched for the caller to
// resolve via StartNewDay or KeepPreviousDay.
//
// The persisted date is always advanced to today here, whichever resolution
// follows. Keeping previous data therefore never re-prompts on the next
// session; the stale data simply stays stamped with its old dates.
func (s *Service) BeginSession() (*DayTransition, error) {
	stored, err := s.store.GetCurrentDate()
	if err != nil {
		return nil, err
	}

	today := s.today()
	s.currentDate = today

	if stored == today {
		return nil, nil
	}

	if stored == "" {
		// First-ever run.
		return nil, s.store.SetCurrentDate(today)
	}

	transition := &DayTransition{PreviousDate: stored}
	if transition.Todos, err = s.store.GetAllTodos(); err != nil {
		return nil, err
	}
	if transition.Habits, err = s.store.GetAllHabits(); err != nil {
		return nil, err
	}
	if transition.FoodEntries, err = s.store.GetAllFoodEntries(); err != nil {
		return nil, err
	}
	if transition.Projects, err = s.store.GetAllProjects(); err != nil {
		return nil, err
	}

	if err := s.store.SetCurrentDate(today); err != nil {
		return nil, err
	}

	logger.Info("Day boundary detected", "previous", stored, "today", today)
	return transition, nil
}

// StartNewDay applies the new-day transform: incomplete todos are re-stamped
// to today, habits reset their completion (streaks untouched) and re-stamp,
// food entries are dropped, projects are left alone.
func (s *Service) StartNewDay() error {
	today := s.CurrentDate()

	todos, err := s.store.GetAllTodos()
	if err != nil {
		return err
	}
	for i, t := range todos {
		if !t.Completed {
			todos[i].Timestamp = today
		}
	}
	if err := s.store.ReplaceTodos(todos); err != nil {
		return err
	}

	habits, err := s.store.GetAllHabits()
	if err != nil {
		return err
	}
	for i := range habits {
		habits[i].Completed = false
		habits[i].Timestamp = today
	}
	if err := s.store.ReplaceHabits(habits); err != nil {
		return err
	}

	if err := s.store.ClearFoodEntries(); err != nil {
		return err
	}

	if err := s.store.SetCurrentDate(today); err != nil {
		return err
	}

	logger.Info("Started new day", "date", today)
	return nil
}

// KeepPreviousDay resolves a day transition without mutating any data. The
// date was already advanced by BeginSession, so prior-day records remain
// stamped with their old dates and fall out of the daily views.
func (s *Service) KeepPreviousDay() error {
	logger.Info("Kept previous day's data", "date", s.CurrentDate())
	return nil
}
