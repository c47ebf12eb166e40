package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage/postgres"
)

func TestBackupCmds(t *testing.T) {
	ctx, buf := setupTestContext(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No backups found.") {
		t.Errorf("output = %q", buf.String())
	}

	h := addHabit(t, ctx, "Keep me")
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("BackupCreateCmd.Run() error = %v", err)
	}

	mgr, err := ctx.backupManager()
	if err != nil {
		t.Fatal(err)
	}
	backups, err := mgr.List()
	if err != nil || len(backups) != 1 {
		t.Fatalf("List() = %v, %v; want one backup", backups, err)
	}

	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		t.Fatal(err)
	}
	addHabit(t, ctx, "Added later")

	buf.Reset()
	if err := (&BackupRestoreCmd{Ref: backups[0].Name}).Run(ctx); err != nil {
		t.Fatalf("BackupRestoreCmd.Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Restored database") {
		t.Errorf("output = %q", buf.String())
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 1 || habits[0].ID != h.ID {
		t.Errorf("habits after restore = %+v, want only %q", habits, h.Title)
	}

	buf.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "habitual-") != 2 {
		t.Errorf("expected the backup and the pre-restore snapshot:\n%s", buf.String())
	}
}

func TestBackupCmds_PostgresUnsupported(t *testing.T) {
	ctx := &Context{Store: postgres.New("postgres://habits@localhost/habitual")}
	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errBackupUnsupported) {
		t.Errorf("Run() error = %v, want errBackupUnsupported", err)
	}
	if err := checkBackups(ctx); err != nil {
		t.Errorf("checkBackups() on postgres = %v, want nil", err)
	}
}

func TestInitCmd_ForceBacksUp(t *testing.T) {
	ctx, buf := setupTestContext(t)
	if _, err := ctx.Store.AddHabit(models.Habit{Title: "Old", Color: "Card-1", WeekDays: []string{"Monday"}}); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("InitCmd.Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Backed up existing database") {
		t.Errorf("output = %q", buf.String())
	}

	mgr, _ := ctx.backupManager()
	backups, err := mgr.List()
	if err != nil || len(backups) != 1 {
		t.Errorf("List() = %v, %v; want the pre-init backup", backups, err)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.in); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
