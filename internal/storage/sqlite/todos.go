package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/maxgreen/daykeep/internal/models"
)

const todoColumns = `id, text, completed, timestamp, project_id, notes, active`

func scanTodo(row interface{ Scan(...any) error }) (models.Todo, error) {
	var t models.Todo
	err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.Timestamp, &t.ProjectID, &t.Notes, &t.Active)
	return t, err
}

func (s *Store) AddTodo(todo models.Todo) error {
	_, err := s.db.Exec(`
		INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.Text, todo.Completed, todo.Timestamp, todo.ProjectID, todo.Notes, todo.Active)
	if err != nil {
		return fmt.Errorf("failed to add todo: %w", err)
	}
	return nil
}

func (s *Store) AddTodos(todos []models.Todo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, todo := range todos {
		if _, err := tx.Exec(`
			INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			todo.ID, todo.Text, todo.Completed, todo.Timestamp, todo.ProjectID, todo.Notes, todo.Active); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to add todo: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) GetTodo(id string) (models.Todo, error) {
	row := s.db.QueryRow(`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	t, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return models.Todo{}, fmt.Errorf("todo not found: %s", id)
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return t, nil
}

func (s *Store) GetAllTodos() ([]models.Todo, error) {
	rows, err := s.db.Query(`SELECT ` + todoColumns + ` FROM todos ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *Store) UpdateTodo(todo models.Todo) error {
	res, err := s.db.Exec(`
		UPDATE todos SET text = ?, completed = ?, timestamp = ?, project_id = ?, notes = ?, active = ?
		WHERE id = ?`,
		todo.Text, todo.Completed, todo.Timestamp, todo.ProjectID, todo.Notes, todo.Active, todo.ID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("todo not found: %s", todo.ID)
	}
	return nil
}

func (s *Store) DeleteTodo(id string) error {
	res, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("todo not found: %s", id)
	}
	return nil
}

func (s *Store) ReplaceTodos(todos []models.Todo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM todos`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear todos: %w", err)
	}
	for _, todo := range todos {
		if _, err := tx.Exec(`
			INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			todo.ID, todo.Text, todo.Completed, todo.Timestamp, todo.ProjectID, todo.Notes, todo.Active); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert todo: %w", err)
		}
	}
	return tx.Commit()
}
