package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/maxgreen/daykeep/internal/logger"
	"github.com/maxgreen/daykeep/internal/models"
)

// document is the persisted snapshot: one keyed blob per collection plus the
// logical current date.
type document struct {
	Version     int                `json:"version"`
	CurrentDate string             `json:"current_date"`
	Todos       []models.Todo      `json:"todos"`
	Habits      []models.Habit     `json:"habits"`
	FoodEntries []models.FoodEntry `json:"food_entries"`
	Projects    []models.Project   `json:"projects"`
}

func emptyDocument() *document {
	return &document{
		Version:     1,
		Todos:       []models.Todo{},
		Habits:      []models.Habit{},
		FoodEntries: []models.FoodEntry{},
		Projects:    []models.Project{},
	}
}

// JSONStore keeps the whole record set in memory and re-serializes the full
// snapshot on every mutation. Writes go through an atomic rename so a crash
// mid-write loses at most the last mutation, never the file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(dataPath string) *JSONStore {
	return &JSONStore{path: dataPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = emptyDocument()
	return s.save()
}

// Load restores the last persisted snapshot. A missing or unparseable file is
// treated as absent: the store starts from empty collections.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = emptyDocument()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("Persisted store is corrupt, starting from empty collections", "path", s.path, "error", err)
		s.doc = emptyDocument()
		return nil
	}

	// Ensure collections are non-nil
	if doc.Todos == nil {
		doc.Todos = []models.Todo{}
	}
	if doc.Habits == nil {
		doc.Habits = []models.Habit{}
	}
	if doc.FoodEntries == nil {
		doc.FoodEntries = []models.FoodEntry{}
	}
	if doc.Projects == nil {
		doc.Projects = []models.Project{}
	}

	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetCurrentDate() (string, error) {
	if err := s.loaded(); err != nil {
		return "", err
	}
	return s.doc.CurrentDate, nil
}

func (s *JSONStore) SetCurrentDate(date string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.CurrentDate = date
	return s.save()
}

func (s *JSONStore) AddTodo(todo models.Todo) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Todos = append(s.doc.Todos, todo)
	return s.save()
}

func (s *JSONStore) AddTodos(todos []models.Todo) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Todos = append(s.doc.Todos, todos...)
	return s.save()
}

func (s *JSONStore) GetTodo(id string) (models.Todo, error) {
	if err := s.loaded(); err != nil {
		return models.Todo{}, err
	}
	for _, t := range s.doc.Todos {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Todo{}, fmt.Errorf("todo not found: %s", id)
}

func (s *JSONStore) GetAllTodos() ([]models.Todo, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	todos := make([]models.Todo, len(s.doc.Todos))
	copy(todos, s.doc.Todos)
	return todos, nil
}

func (s *JSONStore) UpdateTodo(todo models.Todo) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, t := range s.doc.Todos {
		if t.ID == todo.ID {
			s.doc.Todos[i] = todo
			return s.save()
		}
	}
	return fmt.Errorf("todo not found: %s", todo.ID)
}

func (s *JSONStore) DeleteTodo(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, t := range s.doc.Todos {
		if t.ID == id {
			s.doc.Todos = append(s.doc.Todos[:i], s.doc.Todos[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("todo not found: %s", id)
}

func (s *JSONStore) ReplaceTodos(todos []models.Todo) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	s.doc.Todos = todos
	return s.save()
}

func (s *JSONStore) AddProject(project models.Project) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Projects = append(s.doc.Projects, project)
	return s.save()
}

func (s *JSONStore) GetProject(id string) (models.Project, error) {
	if err := s.loaded(); err != nil {
		return models.Project{}, err
	}
	for _, p := range s.doc.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project not found: %s", id)
}

func (s *JSONStore) GetAllProjects() ([]models.Project, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	projects := make([]models.Project, len(s.doc.Projects))
	copy(projects, s.doc.Projects)
	return projects, nil
}

func (s *JSONStore) UpdateProject(project models.Project) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, p := range s.doc.Projects {
		if p.ID == project.ID {
			s.doc.Projects[i] = project
			return s.save()
		}
	}
	return fmt.Errorf("project not found: %s", project.ID)
}

func (s *JSONStore) DeleteProject(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, p := range s.doc.Projects {
		if p.ID == id {
			s.doc.Projects = append(s.doc.Projects[:i], s.doc.Projects[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("project not found: %s", id)
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Habits = append(s.doc.Habits, habit)
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}
	for _, h := range s.doc.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", id)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	habits := make([]models.Habit, len(s.doc.Habits))
	copy(habits, s.doc.Habits)
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, h := range s.doc.Habits {
		if h.ID == habit.ID {
			s.doc.Habits[i] = habit
			return s.save()
		}
	}
	return fmt.Errorf("habit not found: %s", habit.ID)
}

func (s *JSONStore) DeleteHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, h := range s.doc.Habits {
		if h.ID == id {
			s.doc.Habits = append(s.doc.Habits[:i], s.doc.Habits[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("habit not found: %s", id)
}

func (s *JSONStore) ReplaceHabits(habits []models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	s.doc.Habits = habits
	return s.save()
}

func (s *JSONStore) AddFoodEntry(entry models.FoodEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.FoodEntries = append(s.doc.FoodEntries, entry)
	return s.save()
}

func (s *JSONStore) GetFoodEntry(id string) (models.FoodEntry, error) {
	if err := s.loaded(); err != nil {
		return models.FoodEntry{}, err
	}
	for _, e := range s.doc.FoodEntries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.FoodEntry{}, fmt.Errorf("food entry not found: %s", id)
}

func (s *JSONStore) GetAllFoodEntries() ([]models.FoodEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	entries := make([]models.FoodEntry, len(s.doc.FoodEntries))
	copy(entries, s.doc.FoodEntries)
	return entries, nil
}

func (s *JSONStore) UpdateFoodEntry(entry models.FoodEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, e := range s.doc.FoodEntries {
		if e.ID == entry.ID {
			s.doc.FoodEntries[i] = entry
			return s.save()
		}
	}
	return fmt.Errorf("food entry not found: %s", entry.ID)
}

func (s *JSONStore) DeleteFoodEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, e := range s.doc.FoodEntries {
		if e.ID == id {
			s.doc.FoodEntries = append(s.doc.FoodEntries[:i], s.doc.FoodEntries[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("food entry not found: %s", id)
}

func (s *JSONStore) ClearFoodEntries() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.FoodEntries = []models.FoodEntry{}
	return s.save()
}

func (s *JSONStore) GetDataPath() string {
	return s.path
}
