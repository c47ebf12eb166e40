package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// Habit represents a recurring practice with an optional weekly reminder
type Habit struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Color           string    `json:"color"`
	WeekDays        []string  `json:"week_days"` // canonical weekday names
	IsReminderOn    bool      `json:"is_reminder_on"`
	ReminderText    string    `json:"reminder_text,omitempty"`
	ReminderTime    TimeOfDay `json:"reminder_time"`
	NotificationIDs []string  `json:"notification_ids,omitempty"`
	DateAdded       time.Time `json:"date_added"`
}

// Palette is the fixed set of color tags a habit can carry
var Palette = func() []string {
	p := make([]string, constants.PaletteSize)
	for i := range p {
		p[i] = fmt.Sprintf("Card-%d", i+1)
	}
	return p
}()

// ValidColor reports whether color is one of the palette tags
func ValidColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

// Validate checks the fields a persisted habit must satisfy
func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("habit title cannot be empty")
	}
	if len(h.Title) > constants.MaxTitleLength {
		return fmt.Errorf("habit title cannot exceed %d characters", constants.MaxTitleLength)
	}
	if !ValidColor(h.Color) {
		return fmt.Errorf("invalid color %q (expected one of %s)", h.Color, strings.Join(Palette, ", "))
	}
	if len(h.WeekDays) == 0 {
		return fmt.Errorf("at least one weekday must be selected")
	}
	for _, d := range h.WeekDays {
		if _, ok := WeekdayIndex(d); !ok {
			return fmt.Errorf("invalid weekday: %s", d)
		}
	}
	if err := h.ReminderTime.Validate(); err != nil {
		return err
	}
	if h.IsReminderOn && strings.TrimSpace(h.ReminderText) == "" {
		return fmt.Errorf("reminder text cannot be empty when the reminder is on")
	}
	if !h.IsReminderOn && len(h.NotificationIDs) > 0 {
		return fmt.Errorf("habit without a reminder cannot carry notification ids")
	}
	return nil
}

// HasWeekday reports whether the habit is active on the named weekday
func (h *Habit) HasWeekday(name string) bool {
	for _, d := range h.WeekDays {
		if d == name {
			return true
		}
	}
	return false
}

// FormatWeekDays returns the habit's weekdays as a short comma separated list
func (h *Habit) FormatWeekDays() string {
	if len(h.WeekDays) == len(weekdayNames) {
		return "Every day"
	}
	days := make([]string, len(h.WeekDays))
	for i, d := range h.WeekDays {
		days[i] = d[:3]
	}
	return strings.Join(days, ", ")
}
