package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/maxgreen/daykeep/internal/models"
)

const projectColumns = `id, name, description, active, timestamp, ordered`

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Active, &p.Timestamp, &p.Ordered)
	return p, err
}

func (s *Store) AddProject(project models.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Description, project.Active, project.Timestamp, project.Ordered)
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}
	return nil
}

func (s *Store) GetProject(id string) (models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return models.Project{}, fmt.Errorf("project not found: %s", id)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (s *Store) GetAllProjects() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) UpdateProject(project models.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects SET name = ?, description = ?, active = ?, timestamp = ?, ordered = ?
		WHERE id = ?`,
		project.Name, project.Description, project.Active, project.Timestamp, project.Ordered, project.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found: %s", project.ID)
	}
	return nil
}

func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found: %s", id)
	}
	return nil
}
