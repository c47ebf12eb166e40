package cli

import (
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Back up and delete an existing SQLite database before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if mgr, err := ctx.backupManager(); err == nil {
				info, err := mgr.Create()
				if err != nil {
					return fmt.Errorf("failed to backup existing database: %w", err)
				}
				ctx.printf("Backed up existing database to: %s\n", info.Path)
			}
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized habitual storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
