package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/migrations"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
}

var errBackupUnsupported = errors.New("backups are only supported for the SQLite backend")

// backupManager returns a manager for the SQLite database file
func (c *Context) backupManager() (*backup.Manager, error) {
	s, ok := c.Store.(sqlStore)
	if !ok || s.Dialect() != migrations.DialectSQLite {
		return nil, errBackupUnsupported
	}
	return backup.NewManager(c.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (cmd *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	info, err := mgr.Create()
	if err != nil {
		return err
	}
	ctx.printf("✓ Backup created: %s\n", info.Path)
	return nil
}

type BackupListCmd struct{}

func (cmd *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backup directory: %s\n", mgr.Dir())
		return nil
	}

	ctx.printf("Backups in %s:\n\n", mgr.Dir())
	ctx.printf("%-36s %-20s %s\n", "Name", "Created", "Size")
	ctx.println(strings.Repeat("-", 70))
	for _, b := range backups {
		ctx.printf("%-36s %-20s %s\n", b.Name, b.Timestamp.Format("2006-01-02 15:04:05"), formatSize(b.Size))
	}
	return nil
}

type BackupRestoreCmd struct {
	Ref string `arg:"" help:"Backup file name or path."`
}

func (cmd *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	path, err := mgr.Resolve(cmd.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	previous, err := mgr.Restore(path)
	if err != nil {
		return err
	}
	if previous.Name != "" {
		ctx.printf("Saved the current database as %s\n", previous.Name)
	}

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("restored database failed to load: %w", err)
	}
	ctx.printf("✓ Restored database from %s\n", path)
	return nil
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
