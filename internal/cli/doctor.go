package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/maxgreen/daykeep/internal/backup"
	"github.com/maxgreen/daykeep/internal/constants"
	"github.com/maxgreen/daykeep/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
	}

	// Check 2: data directory writable
	if err := checkDataDirWritable(ctx); err != nil {
		fmt.Printf("❌ Data directory writable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data directory writable: OK\n")
	}

	// Check 3: data consistency
	if err := checkDataConsistency(ctx); err != nil {
		fmt.Printf("❌ Data consistency: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data consistency: OK\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: duplicate instances (warning only)
	if err := checkDuplicateInstances(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.DB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkDataDirWritable(ctx *Context) error {
	dir := filepath.Dir(ctx.Store.GetDataPath())
	probe := filepath.Join(dir, ".daykeep-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	return os.Remove(probe)
}

func checkDataConsistency(ctx *Context) error {
	todos, err := ctx.Store.GetAllTodos()
	if err != nil {
		return fmt.Errorf("failed to get todos: %w", err)
	}
	projects, err := ctx.Store.GetAllProjects()
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}

	seen := make(map[string]bool)
	for _, t := range todos {
		if seen[t.ID] {
			return fmt.Errorf("duplicate todo ID found: %s", t.ID)
		}
		seen[t.ID] = true
	}

	projectIDs := make(map[string]bool)
	for _, p := range projects {
		projectIDs[p.ID] = true
	}
	for _, t := range todos {
		if t.ProjectID != "" && !projectIDs[t.ProjectID] {
			return fmt.Errorf("todo %s references missing project %s", t.ID, t.ProjectID)
		}
	}

	// The single-active-task cap must hold for every project.
	activeCount := make(map[string]int)
	for _, t := range todos {
		if t.ProjectID != "" && t.Active && !t.Completed {
			activeCount[t.ProjectID]++
		}
	}
	for id, n := range activeCount {
		if n > 1 {
			return fmt.Errorf("project %s has %d active incomplete tasks, expected at most 1", id, n)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetDataPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'daykeep backup create'")
	}
	return nil
}

func checkDuplicateInstances() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range procs {
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%d daykeep processes running - concurrent writes can clobber each other", count)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
