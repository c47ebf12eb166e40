// Package editor holds the draft of one habit while it is created or edited
// and turns a confirmed draft into stored records and scheduled reminders.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/notifier"
	"github.com/julianstephens/habitual/internal/scheduler"
	"github.com/julianstephens/habitual/internal/storage"
)

var (
	// ErrNotReady is returned by Commit when the draft fails IsReadyToCommit
	ErrNotReady = errors.New("habit is not ready to save")
	// ErrNotEditing is returned by Discard in create mode
	ErrNotEditing = errors.New("no habit is being edited")
)

// Draft mirrors the editable fields of a habit
type Draft struct {
	Title        string
	Color        string
	WeekDays     []string
	IsReminderOn bool
	ReminderText string
	ReminderTime models.TimeOfDay
}

// State is the editor for a single session. It is not safe for concurrent use.
type State struct {
	Draft Draft
	Mode  Mode

	IsReminderPickerVisible       bool
	NotificationPermissionGranted bool

	sched *scheduler.Scheduler
	now   func() time.Time
}

// New starts a session in create mode and asks svc for notification
// permission. A failed request counts as denied.
func New(ctx context.Context, svc notifier.Service) *State {
	s := &State{
		sched: scheduler.New(svc),
		now:   time.Now,
	}
	s.Reset()

	granted, err := svc.RequestPermission(ctx, notifier.PermissionOptions{Sound: true, Alert: true})
	if err != nil {
		logger.Warn("notification permission request failed", "error", err)
		granted = false
	}
	s.NotificationPermissionGranted = granted
	return s
}

func (s *State) defaultDraft() Draft {
	return Draft{
		Color:        constants.DefaultColor,
		WeekDays:     []string{},
		ReminderTime: models.TimeOfDayOf(s.now()),
	}
}

// IsReadyToCommit reports whether the draft can be saved: a title, at least
// one weekday, and reminder text when the reminder is on.
func (s *State) IsReadyToCommit() bool {
	if strings.TrimSpace(s.Draft.Title) == "" {
		return false
	}
	if len(s.Draft.WeekDays) == 0 {
		return false
	}
	if s.Draft.IsReminderOn && strings.TrimSpace(s.Draft.ReminderText) == "" {
		return false
	}
	return true
}

// Target returns the habit under edit
func (s *State) Target() (models.Habit, bool) {
	if e, ok := s.Mode.(Editing); ok {
		return e.Target, true
	}
	return models.Habit{}, false
}

// Edit switches to edit mode for target and loads its fields into the draft.
func (s *State) Edit(target models.Habit) {
	s.Mode = Editing{Target: target}
	s.LoadFromTarget()
}

// LoadFromTarget copies the edit target into the draft, or defaults in create mode.
func (s *State) LoadFromTarget() {
	s.IsReminderPickerVisible = false

	target, ok := s.Target()
	if !ok {
		s.Draft = s.defaultDraft()
		return
	}

	s.Draft = Draft{
		Title:        target.Title,
		Color:        target.Color,
		WeekDays:     append([]string{}, target.WeekDays...),
		IsReminderOn: target.IsReminderOn,
		ReminderText: target.ReminderText,
		ReminderTime: target.ReminderTime,
	}
	if s.Draft.Color == "" {
		s.Draft.Color = constants.DefaultColor
	}
}

// Reset clears the draft and returns to create mode
func (s *State) Reset() {
	s.Mode = Creating{}
	s.LoadFromTarget()
}

// Commit saves the draft. In create mode a new habit is added; in edit mode
// the stored habit is updated. Reminders of an edited habit are cancelled
// before new ones are scheduled. On any failure the draft is kept, no
// newly scheduled reminder is left pending, and an edited habit gets its
// previous reminders back.
func (s *State) Commit(ctx context.Context, store storage.Provider) (models.Habit, error) {
	if !s.IsReadyToCommit() {
		return models.Habit{}, ErrNotReady
	}
	if s.Draft.IsReminderOn && !s.NotificationPermissionGranted {
		return models.Habit{}, fmt.Errorf("failed to schedule reminders: %w", notifier.ErrPermissionDenied)
	}

	var record models.Habit
	target, editing := s.Target()
	if editing {
		var err error
		record, err = store.GetHabit(target.ID)
		if err != nil {
			return models.Habit{}, err
		}
	}

	stored := record
	previousIDs := record.NotificationIDs
	s.apply(&record)

	if len(previousIDs) > 0 {
		if err := s.sched.Cancel(ctx, previousIDs); err != nil {
			return models.Habit{}, err
		}
	}

	var scheduled []string
	if record.IsReminderOn {
		ids, err := s.sched.Schedule(ctx, record.WeekDays, record.ReminderTime, record.ReminderText)
		if err != nil {
			if editing {
				s.restore(ctx, store, stored)
			}
			return models.Habit{}, err
		}
		scheduled = ids
	}
	record.NotificationIDs = scheduled

	saved, err := s.persist(store, record, editing)
	if err != nil {
		if len(scheduled) > 0 {
			if cerr := s.sched.Cancel(context.WithoutCancel(ctx), scheduled); cerr != nil {
				logger.Error("failed to cancel reminders of unsaved habit", "ids", scheduled, "error", cerr)
			}
		}
		if editing {
			s.restore(ctx, store, stored)
		}
		return models.Habit{}, err
	}

	logger.Info("habit saved", "id", saved.ID, "title", saved.Title, "reminders", len(saved.NotificationIDs))
	s.Reset()
	return saved, nil
}

// restore reschedules the reminders of an edited habit after a failed
// commit cancelled them, and points the stored record at the new ids.
func (s *State) restore(ctx context.Context, store storage.Provider, stored models.Habit) {
	if !stored.IsReminderOn || len(stored.NotificationIDs) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	ids, err := s.sched.Schedule(ctx, stored.WeekDays, stored.ReminderTime, stored.ReminderText)
	if err != nil {
		logger.Error("failed to restore reminders of edited habit", "id", stored.ID, "error", err)
		return
	}
	stored.NotificationIDs = ids
	if err := store.UpdateHabit(stored); err != nil {
		logger.Error("failed to save restored reminders", "id", stored.ID, "error", err)
		if cerr := s.sched.Cancel(ctx, ids); cerr != nil {
			logger.Error("failed to cancel restored reminders", "ids", ids, "error", cerr)
		}
	}
}

func (s *State) apply(record *models.Habit) {
	record.Title = strings.TrimSpace(s.Draft.Title)
	record.Color = s.Draft.Color
	record.WeekDays = models.NormalizeWeekdays(s.Draft.WeekDays)
	record.IsReminderOn = s.Draft.IsReminderOn
	record.ReminderTime = s.Draft.ReminderTime
	record.ReminderText = ""
	if s.Draft.IsReminderOn {
		record.ReminderText = strings.TrimSpace(s.Draft.ReminderText)
	}
}

func (s *State) persist(store storage.Provider, record models.Habit, editing bool) (models.Habit, error) {
	if editing {
		if err := store.UpdateHabit(record); err != nil {
			return models.Habit{}, err
		}
		return record, nil
	}
	return store.AddHabit(record)
}

// Discard deletes the habit under edit and cancels its reminders.
func (s *State) Discard(ctx context.Context, store storage.Provider) error {
	target, ok := s.Target()
	if !ok {
		return ErrNotEditing
	}

	record, err := store.GetHabit(target.ID)
	if err != nil {
		return err
	}

	if record.IsReminderOn {
		if err := s.sched.Cancel(ctx, record.NotificationIDs); err != nil {
			return err
		}
	}
	if err := store.DeleteHabit(record.ID); err != nil {
		return err
	}

	logger.Info("habit deleted", "id", record.ID, "title", record.Title)
	s.Reset()
	return nil
}
