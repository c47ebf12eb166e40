package models

import (
	"testing"
	"time"
)

// 2026-10-19 is a Monday
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func TestTrigger_Validate(t *testing.T) {
	tests := []struct {
		name    string
		trigger Trigger
		wantErr bool
	}{
		{"sunday", Trigger{Weekday: 1, Hour: 7}, false},
		{"saturday", Trigger{Weekday: 7, Hour: 23, Minute: 59}, false},
		{"weekday zero", Trigger{Weekday: 0}, true},
		{"weekday eight", Trigger{Weekday: 8}, true},
		{"bad hour", Trigger{Weekday: 3, Hour: 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.trigger.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotification_Validate(t *testing.T) {
	valid := Notification{ID: "n1", Trigger: Trigger{Weekday: 2, Hour: 9}, Content: Content{Body: "Drink"}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	noID := valid
	noID.ID = ""
	if err := noID.Validate(); err == nil {
		t.Error("Validate() should require an id")
	}

	noBody := valid
	noBody.Content.Body = ""
	if err := noBody.Validate(); err == nil {
		t.Error("Validate() should require a body")
	}
}

func TestTrigger_Latest(t *testing.T) {
	nineMonday := Trigger{Weekday: 2, Hour: 9, Repeats: true}

	tests := []struct {
		name    string
		trigger Trigger
		at      time.Time
		want    time.Time
	}{
		{
			name:    "later the same day",
			trigger: nineMonday,
			at:      monday.Add(10 * time.Hour),
			want:    monday.Add(9 * time.Hour),
		},
		{
			name:    "exactly on time",
			trigger: nineMonday,
			at:      monday.Add(9 * time.Hour),
			want:    monday.Add(9 * time.Hour),
		},
		{
			name:    "earlier the same day falls back a week",
			trigger: nineMonday,
			at:      monday.Add(8 * time.Hour),
			want:    monday.AddDate(0, 0, -7).Add(9 * time.Hour),
		},
		{
			name:    "previous sunday",
			trigger: Trigger{Weekday: 1, Hour: 20, Minute: 30},
			at:      monday.Add(10 * time.Hour),
			want:    monday.AddDate(0, 0, -1).Add(20*time.Hour + 30*time.Minute),
		},
		{
			name:    "saturday before",
			trigger: Trigger{Weekday: 7, Hour: 6},
			at:      monday.Add(10 * time.Hour),
			want:    monday.AddDate(0, 0, -2).Add(6 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trigger.Latest(tt.at); !got.Equal(tt.want) {
				t.Errorf("Latest(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestTrigger_Next(t *testing.T) {
	trigger := Trigger{Weekday: 2, Hour: 9}

	if got, want := trigger.Next(monday.Add(8*time.Hour)), monday.Add(9*time.Hour); !got.Equal(want) {
		t.Errorf("Next(before) = %v, want %v", got, want)
	}
	if got, want := trigger.Next(monday.Add(9*time.Hour)), monday.AddDate(0, 0, 7).Add(9*time.Hour); !got.Equal(want) {
		t.Errorf("Next(on time) = %v, want %v", got, want)
	}
}

func TestTrigger_Matches(t *testing.T) {
	trigger := Trigger{Weekday: 2, Hour: 9, Minute: 30}

	if !trigger.Matches(monday.Add(9*time.Hour + 30*time.Minute + 45*time.Second)) {
		t.Error("Matches() should accept any second within the minute")
	}
	if trigger.Matches(monday.Add(9*time.Hour + 31*time.Minute)) {
		t.Error("Matches() should reject the following minute")
	}
	if trigger.Matches(monday.AddDate(0, 0, 1).Add(9*time.Hour + 30*time.Minute)) {
		t.Error("Matches() should reject other weekdays")
	}
}

func TestTrigger_String(t *testing.T) {
	got := Trigger{Weekday: 3, Hour: 7, Minute: 5, Repeats: true}.String()
	if got != "Tuesday 07:05 (weekly)" {
		t.Errorf("String() = %q", got)
	}
}
