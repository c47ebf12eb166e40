package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const notificationColumns = `id, weekday, hour, minute, repeats, title, body, sound, created_at, last_fired_at`

func scanNotification(row rowScanner) (models.Notification, error) {
	var n models.Notification
	var createdAt string
	var lastFiredAt sql.NullString

	err := row.Scan(&n.ID, &n.Trigger.Weekday, &n.Trigger.Hour, &n.Trigger.Minute, &n.Trigger.Repeats,
		&n.Content.Title, &n.Content.Body, &n.Content.Sound, &createdAt, &lastFiredAt)
	if err != nil {
		return models.Notification{}, err
	}

	n.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if lastFiredAt.Valid {
		t, err := time.Parse(time.RFC3339, lastFiredAt.String)
		if err != nil {
			return models.Notification{}, fmt.Errorf("failed to parse last_fired_at: %w", err)
		}
		n.LastFiredAt = &t
	}
	return n, nil
}

func (s *Store) AddNotification(n models.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	var lastFiredAt sql.NullString
	if n.LastFiredAt != nil {
		lastFiredAt = sql.NullString{String: n.LastFiredAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Trigger.Weekday, n.Trigger.Hour, n.Trigger.Minute, n.Trigger.Repeats,
		n.Content.Title, n.Content.Body, n.Content.Sound, n.CreatedAt.Format(time.RFC3339), lastFiredAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *Store) GetNotification(id string) (models.Notification, error) {
	row := s.db.QueryRow(`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	n, err := scanNotification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Notification{}, fmt.Errorf("notification %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

func (s *Store) GetAllNotifications() ([]models.Notification, error) {
	rows, err := s.db.Query(`
		SELECT ` + notificationColumns + ` FROM notifications
		ORDER BY weekday ASC, hour ASC, minute ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

func (s *Store) DeleteNotifications(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	if _, err := s.db.Exec(`DELETE FROM notifications WHERE id IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

func (s *Store) MarkNotificationFired(id string, firedAt time.Time) error {
	result, err := s.db.Exec(`UPDATE notifications SET last_fired_at = ? WHERE id = ?`,
		firedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
