package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const habitColumns = `id, title, color, week_days, is_reminder_on, reminder_text,
	reminder_time, notification_ids, date_added`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var weekDaysJSON, idsJSON, reminderTime string
	var dateAdded int64

	err := row.Scan(&h.ID, &h.Title, &h.Color, &weekDaysJSON, &h.IsReminderOn,
		&h.ReminderText, &reminderTime, &idsJSON, &dateAdded)
	if err != nil {
		return models.Habit{}, err
	}

	if err := json.Unmarshal([]byte(weekDaysJSON), &h.WeekDays); err != nil {
		return models.Habit{}, fmt.Errorf("failed to unmarshal week_days for habit %s: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(idsJSON), &h.NotificationIDs); err != nil {
		return models.Habit{}, fmt.Errorf("failed to unmarshal notification_ids for habit %s: %w", h.ID, err)
	}
	h.ReminderTime, err = models.ParseTimeOfDay(reminderTime)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse reminder_time for habit %s: %w", h.ID, err)
	}
	h.DateAdded = time.Unix(0, dateAdded)

	return h, nil
}

func encodeLists(h models.Habit) (string, string, error) {
	weekDays := h.WeekDays
	if weekDays == nil {
		weekDays = []string{}
	}
	ids := h.NotificationIDs
	if ids == nil {
		ids = []string{}
	}
	weekDaysJSON, err := json.Marshal(weekDays)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal weekdays: %w", err)
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal notification ids: %w", err)
	}
	return string(weekDaysJSON), string(idsJSON), nil
}

func (s *Store) AddHabit(habit models.Habit) (models.Habit, error) {
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.DateAdded.IsZero() {
		habit.DateAdded = time.Now()
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}

	weekDaysJSON, idsJSON, err := encodeLists(habit)
	if err != nil {
		return models.Habit{}, err
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Title, habit.Color, weekDaysJSON, habit.IsReminderOn,
		habit.ReminderText, habit.ReminderTime.String(), idsJSON, habit.DateAdded.UnixNano())
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to insert habit: %w", err)
	}

	s.Publish(storage.Change{Kind: storage.ChangeInsert, HabitID: habit.ID})
	return habit, nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}
	return h, nil
}

func (s *Store) GetHabitByTitle(title string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+` FROM habits
		WHERE title = ? COLLATE NOCASE
		ORDER BY date_added DESC, seq ASC
		LIMIT 1`, title)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %q: %w", title, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}
	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT ` + habitColumns + ` FROM habits ORDER BY date_added DESC, seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}

	return habits, nil
}

// UpdateHabit rewrites every mutable field. DateAdded is never changed.
func (s *Store) UpdateHabit(habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}

	weekDaysJSON, idsJSON, err := encodeLists(habit)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE habits SET
			title = ?, color = ?, week_days = ?, is_reminder_on = ?,
			reminder_text = ?, reminder_time = ?, notification_ids = ?
		WHERE id = ?`,
		habit.Title, habit.Color, weekDaysJSON, habit.IsReminderOn,
		habit.ReminderText, habit.ReminderTime.String(), idsJSON, habit.ID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("habit %s: %w", habit.ID, storage.ErrNotFound)
	}

	s.Publish(storage.Change{Kind: storage.ChangeUpdate, HabitID: habit.ID})
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}

	s.Publish(storage.Change{Kind: storage.ChangeDelete, HabitID: id})
	return nil
}
