package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/maxgreen/daykeep/internal/constants"
	"github.com/maxgreen/daykeep/internal/models"
)

// AddFoodEntry logs a meal or snack at the current wall-clock time. Calories
// must be positive; protein is optional (zero means not tracked) and must not
// be negative.
func (s *Service) AddFoodEntry(name string, calories, protein float64) (models.FoodEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.FoodEntry{}, ErrEmptyName
	}
	if calories <= 0 {
		return models.FoodEntry{}, ErrInvalidCalories
	}
	if protein < 0 {
		return models.FoodEntry{}, ErrInvalidProtein
	}

	entry := models.FoodEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Calories:  calories,
		Protein:   protein,
		Time:      s.now().Format(constants.TimeFormat),
		Timestamp: s.CurrentDate(),
	}
	if err := s.store.AddFoodEntry(entry); err != nil {
		return models.FoodEntry{}, err
	}
	return entry, nil
}

// UpdateFoodEntry edits an entry's name and numbers. Time and day stamps are
// kept from the original entry.
func (s *Service) UpdateFoodEntry(id, name string, calories, protein float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if calories <= 0 {
		return ErrInvalidCalories
	}
	if protein < 0 {
		return ErrInvalidProtein
	}

	entry, err := s.store.GetFoodEntry(id)
	if err != nil {
		return err
	}
	entry.Name = name
	entry.Calories = calories
	entry.Protein = protein
	return s.store.UpdateFoodEntry(entry)
}

// DeleteFoodEntry removes an entry unconditionally.
func (s *Service) DeleteFoodEntry(id string) error {
	return s.store.DeleteFoodEntry(id)
}

// FoodEntries returns the full food entry collection.
func (s *Service) FoodEntries() ([]models.FoodEntry, error) {
	return s.store.GetAllFoodEntries()
}

// FoodEntriesForToday returns entries stamped with the current date.
func (s *Service) FoodEntriesForToday() ([]models.FoodEntry, error) {
	entries, err := s.store.GetAllFoodEntries()
	if err != nil {
		return nil, err
	}
	date := s.CurrentDate()
	var out []models.FoodEntry
	for _, e := range entries {
		if e.Timestamp == date {
			out = append(out, e)
		}
	}
	return out, nil
}
