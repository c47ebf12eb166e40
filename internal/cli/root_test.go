package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitual/internal/editor"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), store)
	ctx.Out = &buf
	return ctx, &buf
}

func addHabit(t *testing.T, ctx *Context, title string) models.Habit {
	t.Helper()
	h, err := ctx.Store.AddHabit(models.Habit{
		Title:    title,
		Color:    "Card-2",
		WeekDays: []string{"Monday"},
	})
	if err != nil {
		t.Fatalf("AddHabit(%s) error = %v", title, err)
	}
	return h
}

func TestResolveHabit(t *testing.T) {
	ctx, _ := setupTestContext(t)
	h := addHabit(t, ctx, "Meditate")

	tests := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{"by id", h.ID, nil},
		{"by title", "Meditate", nil},
		{"by title any case", "meditate", nil},
		{"unknown", "Juggle", storage.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctx.ResolveHabit(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveHabit(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveHabit(%q) error = %v", tt.ref, err)
			}
			if got.ID != h.ID {
				t.Errorf("ResolveHabit(%q) = %s, want %s", tt.ref, got.ID, h.ID)
			}
		})
	}
}

func TestReadinessError(t *testing.T) {
	ctx, _ := setupTestContext(t)
	st := ctx.NewEditor()
	st.SetReminder(true)

	err := readinessError(st)
	if !errors.Is(err, editor.ErrNotReady) {
		t.Fatalf("readinessError() = %v, want ErrNotReady", err)
	}
	for _, want := range []string{"a title", "--days", "--text"} {
		if !bytes.Contains([]byte(err.Error()), []byte(want)) {
			t.Errorf("readinessError() = %q, want it to mention %q", err, want)
		}
	}
}

func TestNewContextDefaults(t *testing.T) {
	c := &Context{}
	if c.context() == nil {
		t.Error("context() should fall back to Background")
	}
	if c.out() == nil {
		t.Error("out() should fall back to stdout")
	}
}
