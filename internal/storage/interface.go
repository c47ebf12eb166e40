package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

// ErrNotFound is returned when a habit or notification does not exist
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	// AddHabit persists a new habit. The store assigns the ID, and DateAdded
	// when it is zero, and returns the stored record.
	AddHabit(models.Habit) (models.Habit, error)
	GetHabit(id string) (models.Habit, error)
	GetHabitByTitle(title string) (models.Habit, error)
	// GetAllHabits returns every habit ordered by DateAdded descending. Habits
	// added at the same instant keep their insertion order.
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Pending notifications
	AddNotification(models.Notification) error
	GetNotification(id string) (models.Notification, error)
	GetAllNotifications() ([]models.Notification, error)
	// DeleteNotifications removes the given ids. Unknown ids are ignored.
	DeleteNotifications(ids []string) error
	MarkNotificationFired(id string, firedAt time.Time) error

	// Subscribe registers fn to be called after every successful habit write.
	// The returned function removes the subscription.
	Subscribe(fn func(Change)) (cancel func())

	// Utils
	GetConfigPath() string
}
