package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/editor"
	"github.com/julianstephens/habitual/internal/models"
)

// habitFormModel holds the raw form values bound to huh fields
type habitFormModel struct {
	Title    string
	Color    string
	WeekDays []string
	Remind   bool
	At       string
	Text     string
}

func newHabitFormModel(d editor.Draft) *habitFormModel {
	return &habitFormModel{
		Title:    d.Title,
		Color:    d.Color,
		WeekDays: append([]string{}, d.WeekDays...),
		Remind:   d.IsReminderOn,
		At:       d.ReminderTime.String(),
		Text:     d.ReminderText,
	}
}

// applyTo copies the form values into the editor draft
func (fm *habitFormModel) applyTo(st *editor.State) error {
	if err := st.SetTitle(fm.Title); err != nil {
		return err
	}
	if err := st.SetColor(fm.Color); err != nil {
		return err
	}
	if err := st.SetWeekDays(fm.WeekDays...); err != nil {
		return err
	}
	st.SetReminder(fm.Remind)
	if !fm.Remind {
		return nil
	}

	at, err := models.ParseTimeOfDay(fm.At)
	if err != nil {
		return err
	}
	if err := st.SetReminderTime(at); err != nil {
		return err
	}
	st.Draft.ReminderText = fm.Text
	return nil
}

// NewHabitForm creates the form for adding or editing a habit
func NewHabitForm(fm *habitFormModel, permissionGranted bool) *huh.Form {
	colors := make([]huh.Option[string], 0, len(models.Palette))
	for _, c := range models.Palette {
		colors = append(colors, huh.NewOption(Swatch(c)+" "+c, c))
	}

	remindDesc := ""
	if !permissionGranted {
		remindDesc = "Notifications are disabled. Enable them with 'habitual settings --notifications-enabled'."
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit title cannot be empty")
					}
					if len(strings.TrimSpace(s)) > constants.MaxTitleLength {
						return fmt.Errorf("habit title cannot exceed %d characters", constants.MaxTitleLength)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(colors...).
				Value(&fm.Color),
			huh.NewMultiSelect[string]().
				Title("Days").
				Options(huh.NewOptions(models.WeekdayNames()...)...).
				Value(&fm.WeekDays).
				Validate(func(days []string) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Remind me").
				Description(remindDesc).
				Value(&fm.Remind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Reminder time (HH:MM)").
				Value(&fm.At).
				Validate(func(s string) error {
					_, err := models.ParseTimeOfDay(s)
					return err
				}),
			huh.NewInput().
				Title("Reminder text").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("reminder text cannot be empty")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !fm.Remind }),
	).WithTheme(huh.ThemeDracula())
}
