package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/habitual/internal/editor"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/notifier"
	"github.com/julianstephens/habitual/internal/storage"
)

type Context struct {
	Ctx      context.Context
	Store    storage.Provider
	Notifier *notifier.Local
	Out      io.Writer
}

func NewContext(ctx context.Context, store storage.Provider) *Context {
	return &Context{
		Ctx:      ctx,
		Store:    store,
		Notifier: notifier.NewLocal(store),
		Out:      os.Stdout,
	}
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// NewEditor starts an editor session. It asks for notification permission.
func (c *Context) NewEditor() *editor.State {
	return editor.New(c.context(), c.Notifier)
}

// ResolveHabit finds a habit by ID, then by title (case-insensitive).
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	habit, err := c.Store.GetHabit(ref)
	if err == nil {
		return habit, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, err
	}

	habit, err = c.Store.GetHabitByTitle(ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("no habit matches %q: %w", ref, err)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

// readinessError explains why a draft cannot be committed
func readinessError(st *editor.State) error {
	var missing []string
	if strings.TrimSpace(st.Draft.Title) == "" {
		missing = append(missing, "a title")
	}
	if len(st.Draft.WeekDays) == 0 {
		missing = append(missing, "at least one weekday (--days)")
	}
	if st.Draft.IsReminderOn && strings.TrimSpace(st.Draft.ReminderText) == "" {
		missing = append(missing, "reminder text (--text)")
	}
	return fmt.Errorf("%w: habit needs %s", editor.ErrNotReady, strings.Join(missing, " and "))
}

func formatReminder(h models.Habit) string {
	if !h.IsReminderOn {
		return "off"
	}
	return h.ReminderTime.String()
}
