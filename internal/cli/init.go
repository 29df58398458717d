package cli

import (
	"fmt"
	"os"

	"github.com/maxgreen/daykeep/internal/backup"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists (a backup is taken first)."`
}

func (c *InitCmd) Run(ctx *Context) error {
	dataPath := ctx.Store.GetDataPath()

	if c.Force {
		if _, err := os.Stat(dataPath); err == nil {
			mgr := backup.NewManager(dataPath)
			if _, err := mgr.Create(); err != nil {
				return fmt.Errorf("failed to back up existing data: %w", err)
			}
			if err := os.Remove(dataPath); err != nil {
				return fmt.Errorf("failed to remove existing data: %w", err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized daykeep storage at: %s\n", dataPath)
	return nil
}
