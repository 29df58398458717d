package storage

import (
	"strings"

	"github.com/maxgreen/daykeep/internal/models"
)

// Provider is the persistence contract. Implementations own the full record
// set: todos, projects, habits, food entries, and the logical current date.
// The store is single-writer; callers never access it concurrently.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Current date
	GetCurrentDate() (string, error)
	SetCurrentDate(date string) error

	// Todos
	AddTodo(models.Todo) error
	AddTodos([]models.Todo) error
	GetTodo(id string) (models.Todo, error)
	GetAllTodos() ([]models.Todo, error)
	UpdateTodo(models.Todo) error
	DeleteTodo(id string) error
	// ReplaceTodos swaps the whole collection in one write. Used by the
	// new-day transform and project cascade deletion.
	ReplaceTodos([]models.Todo) error

	// Projects
	AddProject(models.Project) error
	GetProject(id string) (models.Project, error)
	GetAllProjects() ([]models.Project, error)
	UpdateProject(models.Project) error
	DeleteProject(id string) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	ReplaceHabits([]models.Habit) error

	// Food entries
	AddFoodEntry(models.FoodEntry) error
	GetFoodEntry(id string) (models.FoodEntry, error)
	GetAllFoodEntries() ([]models.FoodEntry, error)
	UpdateFoodEntry(models.FoodEntry) error
	DeleteFoodEntry(id string) error
	ClearFoodEntries() error

	// Utils
	GetDataPath() string
}

// IsSQLitePath reports whether the data path selects the SQLite provider.
func IsSQLitePath(path string) bool {
	return strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite")
}
