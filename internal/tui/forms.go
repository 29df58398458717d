package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/maxgreen/daykeep/internal/models"
)

// NewTransitionForm asks how to handle data left over from a previous day.
func NewTransitionForm(previousDate string, startNew *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("A new day has started (your data is from %s)", previousDate)).
				Description("Start New Day carries over incomplete todos, resets habits, and clears the food log.").
				Affirmative("Start New Day").
				Negative("Keep Previous Day").
				Value(startNew),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewTodoForm(fm *TodoFormModel, projects []models.Project) *huh.Form {
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Todo").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("todo text cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(&fm.Project),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewProjectForm(fm *ProjectFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewText().
				Title("Tasks").
				Description("One task per line").
				Value(&fm.Tasks),
			huh.NewConfirm().
				Title("Ordered").
				Description("Activate tasks strictly in listed order").
				Value(&fm.Ordered),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewFoodForm(fm *FoodFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Food").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("food name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Calories").
				Value(&fm.Calories).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					if f <= 0 {
						return fmt.Errorf("calories must be a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Protein (g)").
				Value(&fm.Protein).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					if f < 0 {
						return fmt.Errorf("protein cannot be negative")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
