package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitual/internal/editor"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/notifier"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and cancel its reminders."`
	List   HabitListCmd   `cmd:"" help:"List habits, newest first." default:"1"`
	Show   HabitShowCmd   `cmd:"" help:"Show a habit and its next reminder."`
}

type HabitAddCmd struct {
	Title  string `arg:"" help:"Habit title."`
	Color  string `short:"c" help:"Color tag (Card-1 to Card-7)." default:"Card-1"`
	Days   string `short:"d" help:"Comma-separated weekdays (mon,wed or 1,3) or 'daily'." required:""`
	Remind bool   `short:"r" help:"Schedule a weekly reminder on each selected day."`
	At     string `short:"a" help:"Reminder time (HH:MM). Defaults to the current time."`
	Text   string `short:"t" help:"Reminder text."`
}

func (c *HabitAddCmd) Validate() error {
	if c.At != "" {
		if _, err := models.ParseTimeOfDay(c.At); err != nil {
			return err
		}
	}
	if !models.ValidColor(c.Color) {
		return fmt.Errorf("invalid color %q", c.Color)
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	st := ctx.NewEditor()
	if err := st.SetTitle(c.Title); err != nil {
		return err
	}
	if err := st.SetColor(c.Color); err != nil {
		return err
	}
	if err := setDays(st, c.Days); err != nil {
		return err
	}
	if c.Remind {
		st.SetReminder(true)
		st.Draft.ReminderText = c.Text
		if err := setAt(st, c.At); err != nil {
			return err
		}
	}

	habit, err := commit(ctx, st)
	if err != nil {
		return err
	}

	ctx.printf("Added habit: %s (ID: %s)\n", habit.Title, habit.ID)
	printReminderSummary(ctx, habit)
	return nil
}

type HabitEditCmd struct {
	Ref    string  `arg:"" help:"Habit ID or title."`
	Title  *string `help:"New title."`
	Color  *string `short:"c" help:"Color tag (Card-1 to Card-7)."`
	Days   *string `short:"d" help:"Comma-separated weekdays or 'daily'."`
	Remind *bool   `short:"r" help:"Turn the weekly reminder on or off (--remind=false)."`
	At     *string `short:"a" help:"Reminder time (HH:MM)."`
	Text   *string `short:"t" help:"Reminder text."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	st := ctx.NewEditor()
	st.Edit(habit)

	if c.Title != nil {
		if err := st.SetTitle(*c.Title); err != nil {
			return err
		}
	}
	if c.Color != nil {
		if err := st.SetColor(*c.Color); err != nil {
			return err
		}
	}
	if c.Days != nil {
		if err := setDays(st, *c.Days); err != nil {
			return err
		}
	}
	if c.Remind != nil {
		st.SetReminder(*c.Remind)
	}
	if c.At != nil {
		if err := setAt(st, *c.At); err != nil {
			return err
		}
	}
	if c.Text != nil {
		st.Draft.ReminderText = *c.Text
	}

	updated, err := commit(ctx, st)
	if err != nil {
		return err
	}

	ctx.printf("Updated habit: %s (ID: %s)\n", updated.Title, updated.ID)
	printReminderSummary(ctx, updated)
	return nil
}

type HabitDeleteCmd struct {
	Ref string `arg:"" help:"Habit ID or title."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	st := ctx.NewEditor()
	st.Edit(habit)
	if err := st.Discard(ctx.context(), ctx.Store); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	ctx.printf("Deleted habit: %s (ID: %s)\n", habit.Title, habit.ID)
	return nil
}

func setDays(st *editor.State, s string) error {
	days, err := models.ParseWeekdays(s)
	if err != nil {
		return err
	}
	return st.SetWeekDays(days...)
}

func setAt(st *editor.State, s string) error {
	if s == "" {
		return nil
	}
	t, err := models.ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	return st.SetReminderTime(t)
}

func commit(ctx *Context, st *editor.State) (models.Habit, error) {
	if !st.IsReadyToCommit() {
		return models.Habit{}, readinessError(st)
	}

	habit, err := st.Commit(ctx.context(), ctx.Store)
	if errors.Is(err, notifier.ErrPermissionDenied) {
		return models.Habit{}, fmt.Errorf("%w (enable notifications with 'habitual settings --notifications-enabled')", err)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to save habit: %w", err)
	}
	return habit, nil
}

func printReminderSummary(ctx *Context, h models.Habit) {
	if !h.IsReminderOn {
		return
	}
	ctx.printf("  %d reminder(s) at %s on %s\n", len(h.NotificationIDs), h.ReminderTime, h.FormatWeekDays())
}
