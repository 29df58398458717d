package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/maxgreen/daykeep/internal/cli"
	"github.com/maxgreen/daykeep/internal/config"
	"github.com/maxgreen/daykeep/internal/constants"
	"github.com/maxgreen/daykeep/internal/errors"
	"github.com/maxgreen/daykeep/internal/logger"
	"github.com/maxgreen/daykeep/internal/storage"
	"github.com/maxgreen/daykeep/internal/storage/sqlite"
	"github.com/maxgreen/daykeep/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/daykeep/config.toml"`
	Data    string `help:"Data file path (.json for JSON storage, .db for SQLite)." type:"path"`
	Debug   bool   `help:"Enable verbose logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize daykeep storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Day    struct {
		Status   cli.DayStatusCmd   `cmd:"" help:"Show today's summary."`
		StartNew cli.DayStartNewCmd `cmd:"" help:"Reset for a new day."`
		Keep     cli.DayKeepCmd     `cmd:"" help:"Keep the previous day's items."`
	} `cmd:"" help:"Manage the day boundary."`
	Todo struct {
		Add        cli.TodoAddCmd        `cmd:"" help:"Add a todo."`
		List       cli.TodoListCmd       `cmd:"" help:"List todos."`
		Done       cli.TodoDoneCmd       `cmd:"" help:"Toggle a todo's completion."`
		Activate   cli.TodoActivateCmd   `cmd:"" help:"Activate a pooled todo."`
		Deactivate cli.TodoDeactivateCmd `cmd:"" help:"Return a todo to the pool."`
		Edit       cli.TodoEditCmd       `cmd:"" help:"Edit a todo's text."`
		Move       cli.TodoMoveCmd       `cmd:"" help:"Move a todo between projects."`
		Delete     cli.TodoDeleteCmd     `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage todos."`
	Project struct {
		Add    cli.ProjectAddCmd    `cmd:"" help:"Create a project with a task list."`
		List   cli.ProjectListCmd   `cmd:"" help:"List projects."`
		Toggle cli.ProjectToggleCmd `cmd:"" help:"Pause or resume a project."`
		Next   cli.ProjectNextCmd   `cmd:"" help:"Promote the project's next task."`
		Edit   cli.ProjectEditCmd   `cmd:"" help:"Edit a project."`
		Delete cli.ProjectDeleteCmd `cmd:"" help:"Delete a project and its tasks."`
	} `cmd:"" help:"Manage projects."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit for today."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Rename a habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Food struct {
		Add    cli.FoodAddCmd    `cmd:"" help:"Log a food entry."`
		List   cli.FoodListCmd   `cmd:"" help:"List today's food."`
		Edit   cli.FoodEditCmd   `cmd:"" help:"Edit a food entry."`
		Delete cli.FoodDeleteCmd `cmd:"" help:"Delete a food entry."`
	} `cmd:"" help:"Manage the food log."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal dashboard for todos, projects, habits, and food tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, NoExpandSubcommands: true}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if CLI.Data != "" {
		cfg.DataPath = CLI.Data
	}

	dataPath, err := config.ExpandHome(cfg.DataPath)
	if err != nil {
		errors.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(dataPath), 0700); err != nil {
		errors.Fatal(fmt.Errorf("failed to create data directory: %w", err))
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: filepath.Dir(dataPath)}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if storage.IsSQLitePath(dataPath) {
		store = sqlite.NewStore(dataPath)
	} else {
		store = storage.NewJSONStore(dataPath)
	}

	appCtx := &cli.Context{Store: store}

	// Everything except init expects an existing store and an open session.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()

		svc := tracker.NewService(store, trackerOptions(cfg)...)
		transition, err := svc.BeginSession()
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Tracker = svc
		appCtx.Transition = transition
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

func trackerOptions(cfg config.Config) []tracker.Option {
	if cfg.Timezone == "" || cfg.Timezone == "Local" {
		return nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in config, using system local time", "timezone", cfg.Timezone, "error", err)
		return nil
	}
	return []tracker.Option{tracker.WithClock(func() time.Time { return time.Now().In(loc) })}
}
