package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const notificationColumns = `id, weekday, hour, minute, repeats, title, body, sound, created_at, last_fired_at`

func scanNotification(row rowScanner) (models.Notification, error) {
	var n models.Notification
	var lastFiredAt sql.NullTime

	err := row.Scan(&n.ID, &n.Trigger.Weekday, &n.Trigger.Hour, &n.Trigger.Minute, &n.Trigger.Repeats,
		&n.Content.Title, &n.Content.Body, &n.Content.Sound, &n.CreatedAt, &lastFiredAt)
	if err != nil {
		return models.Notification{}, err
	}
	if lastFiredAt.Valid {
		t := lastFiredAt.Time
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

	var lastFiredAt sql.NullTime
	if n.LastFiredAt != nil {
		lastFiredAt = sql.NullTime{Time: *n.LastFiredAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.ID, n.Trigger.Weekday, n.Trigger.Hour, n.Trigger.Minute, n.Trigger.Repeats,
		n.Content.Title, n.Content.Body, n.Content.Sound, n.CreatedAt, lastFiredAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *Store) GetNotification(id string) (models.Notification, error) {
	row := s.db.QueryRow(`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
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
	if _, err := s.db.Exec(`DELETE FROM notifications WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

func (s *Store) MarkNotificationFired(id string, firedAt time.Time) error {
	result, err := s.db.Exec(`UPDATE notifications SET last_fired_at = $1 WHERE id = $2`, firedAt, id)
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
