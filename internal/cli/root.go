package cli

import (
	"fmt"

	"github.com/maxgreen/daykeep/internal/backup"
	"github.com/maxgreen/daykeep/internal/logger"
	"github.com/maxgreen/daykeep/internal/models"
	"github.com/maxgreen/daykeep/internal/storage"
	"github.com/maxgreen/daykeep/internal/tracker"
)

// Context is passed to every command by kong.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Service

	// Transition is non-nil when this session crossed a date boundary and
	// the user has not resolved it yet.
	Transition *tracker.DayTransition
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetDataPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// NoticePendingTransition prints a hint when a day boundary was crossed and
// the invoked command is not one that resolves it.
func (c *Context) NoticePendingTransition() {
	if c.Transition == nil {
		return
	}
	fmt.Printf("A new day started (previous data from %s).\n", c.Transition.PreviousDate)
	fmt.Println("Run 'daykeep day start-new' to reset for today, or 'daykeep day keep' to keep everything as-is.")
	fmt.Println()
}

// CheckMark renders a completion marker.
func CheckMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// ProjectName resolves a todo's project badge, or "" for standalone todos and
// dangling references.
func ProjectName(projects []models.Project, projectID string) string {
	if projectID == "" {
		return ""
	}
	for _, p := range projects {
		if p.ID == projectID {
			return p.Name
		}
	}
	return ""
}
