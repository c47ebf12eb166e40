package editor

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

// SetTitle sets the draft title, rejecting titles over the length limit.
func (s *State) SetTitle(title string) error {
	if len(strings.TrimSpace(title)) > constants.MaxTitleLength {
		return fmt.Errorf("habit title cannot exceed %d characters", constants.MaxTitleLength)
	}
	s.Draft.Title = title
	return nil
}

// SetWeekDays replaces the weekday selection. Names may be canonical,
// abbreviated or numeric; any unknown name rejects the whole selection.
func (s *State) SetWeekDays(names ...string) error {
	days := make([]string, 0, len(names))
	for _, n := range names {
		day, err := models.ParseWeekday(n)
		if err != nil {
			return err
		}
		days = append(days, day)
	}
	s.Draft.WeekDays = models.NormalizeWeekdays(days)
	return nil
}

// ToggleWeekday adds the weekday if absent, removes it otherwise.
func (s *State) ToggleWeekday(name string) error {
	day, err := models.ParseWeekday(name)
	if err != nil {
		return err
	}

	days := make([]string, 0, len(s.Draft.WeekDays)+1)
	found := false
	for _, d := range s.Draft.WeekDays {
		if d == day {
			found = true
			continue
		}
		days = append(days, d)
	}
	if !found {
		days = append(days, day)
	}
	s.Draft.WeekDays = models.NormalizeWeekdays(days)
	return nil
}

// SetColor sets the card color; it must be one of models.Palette.
func (s *State) SetColor(color string) error {
	if !models.ValidColor(color) {
		return fmt.Errorf("invalid color %q (expected one of %s)", color, strings.Join(models.Palette, ", "))
	}
	s.Draft.Color = color
	return nil
}

// SetReminderTime sets the time of day reminders fire at.
func (s *State) SetReminderTime(t models.TimeOfDay) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.Draft.ReminderTime = t
	return nil
}

// SetReminder turns the reminder on or off. Turning it off hides the time picker.
func (s *State) SetReminder(on bool) {
	s.Draft.IsReminderOn = on
	if !on {
		s.IsReminderPickerVisible = false
	}
}

// ToggleReminderPicker shows or hides the reminder time picker. It stays
// hidden while the reminder is off.
func (s *State) ToggleReminderPicker() {
	s.IsReminderPickerVisible = s.Draft.IsReminderOn && !s.IsReminderPickerVisible
}
