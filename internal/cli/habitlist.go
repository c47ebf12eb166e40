package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/tui"
)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	if len(habits) == 0 {
		ctx.println("No habits yet. Add one with 'habitual habit add'.")
		return nil
	}

	ctx.printf("  %-28s %-26s %-8s %-10s %s\n", "Title", "Days", "Reminder", "Added", "ID")
	ctx.println(strings.Repeat("-", 110))

	for _, h := range habits {
		ctx.printf("%s %s %-26s %-8s %-10s %s\n",
			tui.Swatch(h.Color), fitColumn(h.Title, 26, 28), h.FormatWeekDays(), formatReminder(h),
			h.DateAdded.Local().Format(constants.DateFormat), h.ID)
	}

	return nil
}

// fitColumn truncates s to limit display cells and pads it to width.
func fitColumn(s string, limit, width int) string {
	s = ansi.Truncate(s, limit, "...")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

type HabitShowCmd struct {
	Ref string `arg:"" help:"Habit ID or title."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	ctx.printf("%s %s\n", tui.Swatch(h.Color), h.Title)
	ctx.printf("  ID:       %s\n", h.ID)
	ctx.printf("  Color:    %s\n", h.Color)
	ctx.printf("  Days:     %s\n", strings.Join(h.WeekDays, ", "))
	ctx.printf("  Added:    %s\n", h.DateAdded.Local().Format(time.RFC1123))

	if !h.IsReminderOn {
		ctx.printf("  Reminder: off\n")
		return nil
	}
	ctx.printf("  Reminder: %s \"%s\"\n", h.ReminderTime, h.ReminderText)

	next, err := nextReminder(ctx.Store, h, time.Now())
	if err != nil {
		return err
	}
	if next.IsZero() {
		ctx.printf("  Next:     none pending\n")
	} else {
		ctx.printf("  Next:     %s\n", next.Format("Mon Jan 2 15:04"))
	}
	return nil
}

// nextReminder returns the earliest upcoming occurrence among the habit's
// pending notifications, or the zero time when none are pending.
func nextReminder(store storage.Provider, h models.Habit, now time.Time) (time.Time, error) {
	var next time.Time
	for _, id := range h.NotificationIDs {
		n, err := store.GetNotification(id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return time.Time{}, err
		}
		occ := n.Trigger.Next(now)
		if next.IsZero() || occ.Before(next) {
			next = occ
		}
	}
	return next, nil
}
