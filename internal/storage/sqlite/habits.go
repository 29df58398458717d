package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/maxgreen/daykeep/internal/models"
)

const habitColumns = `id, name, completed, streak, timestamp`

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	err := row.Scan(&h.ID, &h.Name, &h.Completed, &h.Streak, &h.Timestamp)
	return h, err
}

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`) VALUES (?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Completed, habit.Streak, habit.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}
	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT ` + habitColumns + ` FROM habits ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	res, err := s.db.Exec(`
		UPDATE habits SET name = ?, completed = ?, streak = ?, timestamp = ? WHERE id = ?`,
		habit.Name, habit.Completed, habit.Streak, habit.Timestamp, habit.ID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

func (s *Store) ReplaceHabits(habits []models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	for _, habit := range habits {
		if _, err := tx.Exec(`
			INSERT INTO habits (`+habitColumns+`) VALUES (?, ?, ?, ?, ?)`,
			habit.ID, habit.Name, habit.Completed, habit.Streak, habit.Timestamp); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert habit: %w", err)
		}
	}
	return tx.Commit()
}
