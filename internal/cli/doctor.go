package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/notifier"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/migrations"
)

type DoctorCmd struct{}

// sqlStore is implemented by the SQL-backed stores
type sqlStore interface {
	GetDB() *sql.DB
	Dialect() string
}

type check struct {
	name     string
	run      func(*Context) error
	needsDB  bool
	warnOnly bool
}

var doctorChecks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Habit integrity", run: checkHabitsIntegrity, needsDB: true},
	{name: "Orphaned reminders", run: checkOrphanedReminders, needsDB: true, warnOnly: true},
	{name: "Backups", run: checkBackups, warnOnly: true},
	{name: "Tray app", run: func(*Context) error { return notifier.CheckTray() }, warnOnly: true},
	{name: "Clock/timezone", run: func(*Context) error { return checkClockTimezone(time.Now()) }},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		ctx.printf("❌ Database reachable: FAIL\n   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.printf("✓ Database reachable: OK\n")
	}

	for _, c := range doctorChecks {
		if c.needsDB && !dbReachable {
			ctx.printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	s, ok := ctx.Store.(sqlStore)
	if !ok {
		return nil
	}
	db := s.GetDB()
	if db == nil {
		return errors.New("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	s, ok := ctx.Store.(sqlStore)
	if !ok || s.GetDB() == nil {
		return nil
	}

	current, latest, err := migrations.Versions(s.GetDB(), s.Dialect())
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Validate()
}

// checkHabitsIntegrity verifies each habit is valid and that every reminder
// it references is still pending.
func checkHabitsIntegrity(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	for _, h := range habits {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("habit %s (%s): %w", h.ID, h.Title, err)
		}
		if !h.IsReminderOn {
			continue
		}
		if len(h.NotificationIDs) != len(h.WeekDays) {
			return fmt.Errorf("habit %s (%s) has %d reminders for %d weekdays", h.ID, h.Title, len(h.NotificationIDs), len(h.WeekDays))
		}
		for _, id := range h.NotificationIDs {
			if _, err := ctx.Store.GetNotification(id); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("habit %s (%s) references missing reminder %s - re-save it with 'habitual habit edit'", h.ID, h.Title, id)
				}
				return err
			}
		}
	}
	return nil
}

func checkOrphanedReminders(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	referenced := make(map[string]bool)
	for _, h := range habits {
		for _, id := range h.NotificationIDs {
			referenced[id] = true
		}
	}

	pending, err := ctx.Store.GetAllNotifications()
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	orphaned := 0
	for _, n := range pending {
		if !referenced[n.ID] {
			orphaned++
		}
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d pending reminders not owned by any habit", orphaned)
	}
	return nil
}

func checkBackups(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if errors.Is(err, errBackupUnsupported) {
		return nil
	}
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups in %s - create one with 'habitual backup'", mgr.Dir())
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
