package tui

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

type habitItem struct {
	habit models.Habit
}

func (i habitItem) Title() string {
	return Swatch(i.habit.Color) + " " + i.habit.Title
}

func (i habitItem) Description() string {
	days := i.habit.FormatWeekDays()
	if !i.habit.IsReminderOn {
		return days
	}
	return fmt.Sprintf("%s · remind at %s: %s", days, i.habit.ReminderTime, i.habit.ReminderText)
}

func (i habitItem) FilterValue() string { return i.habit.Title }
