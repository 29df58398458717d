package cli

import (
	"fmt"
	"strings"
)

type ProjectAddCmd struct {
	Name        string `arg:"" help:"Project name."`
	Tasks       string `short:"t" help:"Task list, one task per line (use \\n or pipe from a file)."`
	Description string `short:"d" help:"Optional project description."`
	Ordered     bool   `short:"o" help:"Activate tasks strictly in listed order."`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	// Allow literal "\n" separators so multi-task lists work without a heredoc.
	taskLines := strings.ReplaceAll(c.Tasks, `\n`, "\n")

	project, todos, err := ctx.Tracker.AddProject(c.Name, c.Description, taskLines, c.Ordered)
	if err != nil {
		return err
	}

	mode := "unordered"
	if project.Ordered {
		mode = "ordered"
	}
	fmt.Printf("Added %s project: %s (ID: %s)\n", mode, project.Name, project.ID)
	fmt.Printf("  %d tasks created\n", len(todos))
	return nil
}

type ProjectListCmd struct{}

func (c *ProjectListCmd) Run(ctx *Context) error {
	ctx.NoticePendingTransition()

	projects, err := ctx.Tracker.Projects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Println("Projects:")
	for _, p := range projects {
		status := "active"
		if !p.Active {
			status = "paused"
		}
		mode := "unordered"
		if p.Ordered {
			mode = "ordered"
		}

		stats, err := ctx.Tracker.ProjectStats(p.ID)
		if err != nil {
			return err
		}

		fmt.Printf("  [%s] %s (%s, %d/%d done)\n", status, p.Name, mode, stats.Completed, stats.Total)
		if p.Description != "" {
			fmt.Printf("      %s\n", p.Description)
		}
		fmt.Printf("      ID: %s\n", p.ID)
	}
	return nil
}

type ProjectToggleCmd struct {
	ID string `arg:"" help:"Project ID to pause or resume."`
}

func (c *ProjectToggleCmd) Run(ctx *Context) error {
	project, err := ctx.Tracker.ToggleProject(c.ID)
	if err != nil {
		return err
	}
	if project.Active {
		fmt.Printf("Resumed project: %s\n", project.Name)
	} else {
		fmt.Printf("Paused project: %s\n", project.Name)
	}
	return nil
}

type ProjectNextCmd struct {
	ID string `arg:"" help:"Project ID to promote the next task for."`
}

func (c *ProjectNextCmd) Run(ctx *Context) error {
	todo, promoted, err := ctx.Tracker.ActivateNextTask(c.ID)
	if err != nil {
		return err
	}
	if !promoted {
		fmt.Println("No task promoted (a task is already active, or none are eligible)")
		return nil
	}
	fmt.Printf("Activated: %s\n", todo.Text)
	return nil
}

type ProjectEditCmd struct {
	ID          string `arg:"" help:"Project ID to edit."`
	Name        string `arg:"" help:"New project name."`
	Description string `short:"d" help:"New project description."`
}

func (c *ProjectEditCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.UpdateProject(c.ID, c.Name, c.Description); err != nil {
		return err
	}
	fmt.Println("Project updated")
	return nil
}

type ProjectDeleteCmd struct {
	ID string `arg:"" help:"Project ID to delete."`
}

func (c *ProjectDeleteCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.DeleteProject(c.ID); err != nil {
		return err
	}
	fmt.Println("Project and its tasks deleted")
	return nil
}
