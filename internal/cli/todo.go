package cli

import (
	"errors"
	"fmt"

	"github.com/maxgreen/daykeep/internal/models"
	"github.com/maxgreen/daykeep/internal/tracker"
)

type TodoAddCmd struct {
	Text    string `arg:"" help:"Todo text."`
	Project string `short:"p" help:"Project ID to attach the todo to."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	todo, err := ctx.Tracker.AddTodo(c.Text, c.Project)
	if err != nil {
		return err
	}
	fmt.Printf("Added todo: %s (ID: %s)\n", todo.Text, todo.ID)
	return nil
}

type TodoListCmd struct {
	All  bool `short:"a" help:"Show every todo regardless of date or activation."`
	Pool bool `help:"Show only the dormant pool (inactive, incomplete)."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	ctx.NoticePendingTransition()

	var (
		todos []ttodo
		err   error
	)
	switch {
	case c.All:
		todos, err = listTodos(ctx, ctx.Tracker.Todos)
	case c.Pool:
		todos, err = listTodos(ctx, ctx.Tracker.PoolTodos)
	default:
		todos, err = listTodos(ctx, ctx.Tracker.ActiveWorkingSet)
	}
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		fmt.Println("No todos found")
		return nil
	}

	fmt.Println("Todos:")
	for _, t := range todos {
		badge := ""
		if t.project != "" {
			badge = fmt.Sprintf(" (%s)", t.project)
		}
		fmt.Printf("  %s %s%s\n", CheckMark(t.completed), t.text, badge)
		fmt.Printf("      ID: %s  date: %s\n", t.id, t.timestamp)
	}
	return nil
}

// ttodo is a todo joined with its project name for display.
type ttodo struct {
	id, text, timestamp, project string
	completed                    bool
}

func listTodos(ctx *Context, fetch func() ([]models.Todo, error)) ([]ttodo, error) {
	todos, err := fetch()
	if err != nil {
		return nil, err
	}
	projects, err := ctx.Tracker.Projects()
	if err != nil {
		return nil, err
	}

	out := make([]ttodo, 0, len(todos))
	for _, t := range todos {
		out = append(out, ttodo{
			id:        t.ID,
			text:      t.Text,
			timestamp: t.Timestamp,
			project:   ProjectName(projects, t.ProjectID),
			completed: t.Completed,
		})
	}
	return out, nil
}

type TodoDoneCmd struct {
	ID string `arg:"" help:"Todo ID to toggle."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	todo, err := ctx.Tracker.ToggleTodo(c.ID)
	if err != nil {
		return err
	}
	if todo.Completed {
		fmt.Printf("Completed: %s\n", todo.Text)
	} else {
		fmt.Printf("Reopened: %s\n", todo.Text)
	}
	return nil
}

type TodoActivateCmd struct {
	ID string `arg:"" help:"Todo ID to activate."`
}

func (c *TodoActivateCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.ActivateTodo(c.ID); err != nil {
		if errors.Is(err, tracker.ErrProjectTaskActive) {
			return fmt.Errorf("another task in this project is already active; complete it first")
		}
		return err
	}
	fmt.Println("Todo activated")
	return nil
}

type TodoDeactivateCmd struct {
	ID string `arg:"" help:"Todo ID to deactivate."`
}

func (c *TodoDeactivateCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.DeactivateTodo(c.ID); err != nil {
		return err
	}
	fmt.Println("Todo returned to the pool")
	return nil
}

type TodoEditCmd struct {
	ID    string  `arg:"" help:"Todo ID to edit."`
	Text  string  `arg:"" help:"New todo text."`
	Notes *string `short:"n" help:"Notes to attach (pass an empty string to clear)."`
}

func (c *TodoEditCmd) Run(ctx *Context) error {
	todo, err := ctx.Store.GetTodo(c.ID)
	if err != nil {
		return err
	}
	todo.Text = c.Text
	if c.Notes != nil {
		todo.Notes = *c.Notes
	}
	if err := ctx.Tracker.UpdateTodo(todo); err != nil {
		return err
	}
	fmt.Println("Todo updated")
	return nil
}

type TodoMoveCmd struct {
	ID      string `arg:"" help:"Todo ID to move."`
	Project string `arg:"" help:"Destination project ID, or '-' to detach."`
}

func (c *TodoMoveCmd) Run(ctx *Context) error {
	dest := c.Project
	if dest == "-" {
		dest = ""
	}
	if err := ctx.Tracker.MoveTodo(c.ID, dest); err != nil {
		return err
	}
	if dest == "" {
		fmt.Println("Todo detached from its project")
	} else {
		fmt.Println("Todo moved")
	}
	return nil
}

type TodoDeleteCmd struct {
	ID string `arg:"" help:"Todo ID to delete."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.DeleteTodo(c.ID); err != nil {
		return err
	}
	fmt.Println("Todo deleted")
	return nil
}
