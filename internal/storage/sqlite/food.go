package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/maxgreen/daykeep/internal/models"
)

const foodColumns = `id, name, calories, protein, time, timestamp`

func scanFoodEntry(row interface{ Scan(...any) error }) (models.FoodEntry, error) {
	var e models.FoodEntry
	err := row.Scan(&e.ID, &e.Name, &e.Calories, &e.Protein, &e.Time, &e.Timestamp)
	return e, err
}

func (s *Store) AddFoodEntry(entry models.FoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO food_entries (`+foodColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Calories, entry.Protein, entry.Time, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to add food entry: %w", err)
	}
	return nil
}

func (s *Store) GetFoodEntry(id string) (models.FoodEntry, error) {
	row := s.db.QueryRow(`SELECT `+foodColumns+` FROM food_entries WHERE id = ?`, id)
	e, err := scanFoodEntry(row)
	if err == sql.ErrNoRows {
		return models.FoodEntry{}, fmt.Errorf("food entry not found: %s", id)
	}
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("failed to get food entry: %w", err)
	}
	return e, nil
}

func (s *Store) GetAllFoodEntries() ([]models.FoodEntry, error) {
	rows, err := s.db.Query(`SELECT ` + foodColumns + ` FROM food_entries ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	defer rows.Close()

	entries := []models.FoodEntry{}
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateFoodEntry(entry models.FoodEntry) error {
	res, err := s.db.Exec(`
		UPDATE food_entries SET name = ?, calories = ?, protein = ?, time = ?, timestamp = ?
		WHERE id = ?`,
		entry.Name, entry.Calories, entry.Protein, entry.Time, entry.Timestamp, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update food entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("food entry not found: %s", entry.ID)
	}
	return nil
}

func (s *Store) DeleteFoodEntry(id string) error {
	res, err := s.db.Exec(`DELETE FROM food_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete food entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("food entry not found: %s", id)
	}
	return nil
}

func (s *Store) ClearFoodEntries() error {
	if _, err := s.db.Exec(`DELETE FROM food_entries`); err != nil {
		return fmt.Errorf("failed to clear food entries: %w", err)
	}
	return nil
}
