package models

import (
	"fmt"
	"time"
)

// Trigger fires on a weekday (1=Sunday ... 7=Saturday) at a wall-clock time
type Trigger struct {
	Weekday int  `json:"weekday"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Repeats bool `json:"repeats"`
}

// Content is what the user sees when a notification is delivered
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound bool   `json:"sound"`
}

// Notification is a pending local notification request
type Notification struct {
	ID          string     `json:"id"`
	Trigger     Trigger    `json:"trigger"`
	Content     Content    `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
}

func (t Trigger) Validate() error {
	if _, ok := WeekdayName(t.Weekday); !ok {
		return fmt.Errorf("trigger weekday %d is outside valid range (1-7)", t.Weekday)
	}
	return TimeOfDay{Hour: t.Hour, Minute: t.Minute}.Validate()
}

func (n *Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("notification id cannot be empty")
	}
	if n.Content.Body == "" {
		return fmt.Errorf("notification body cannot be empty")
	}
	return n.Trigger.Validate()
}

func (t Trigger) weekday() time.Weekday {
	return time.Weekday(t.Weekday - 1)
}

// Matches reports whether at falls in the trigger's minute
func (t Trigger) Matches(at time.Time) bool {
	return at.Weekday() == t.weekday() && at.Hour() == t.Hour && at.Minute() == t.Minute
}

// Latest returns the most recent occurrence at or before at.
func (t Trigger) Latest(at time.Time) time.Time {
	days := (int(at.Weekday()) - int(t.weekday()) + 7) % 7
	day := at.AddDate(0, 0, -days)
	occ := time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, at.Location())
	if occ.After(at) {
		occ = occ.AddDate(0, 0, -7)
	}
	return occ
}

// Next returns the first occurrence strictly after after.
func (t Trigger) Next(after time.Time) time.Time {
	return t.Latest(after).AddDate(0, 0, 7)
}

func (t Trigger) String() string {
	name, _ := WeekdayName(t.Weekday)
	s := fmt.Sprintf("%s %02d:%02d", name, t.Hour, t.Minute)
	if t.Repeats {
		s += " (weekly)"
	}
	return s
}
