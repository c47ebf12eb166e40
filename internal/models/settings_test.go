package models

import (
	"testing"

	"github.com/julianstephens/habitual/internal/constants"
)

func TestMapToSettings(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]string
		want    Settings
		wantErr bool
	}{
		{
			name: "empty map keeps defaults",
			data: map[string]string{},
			want: DefaultSettings(),
		},
		{
			name: "all keys",
			data: map[string]string{
				constants.SettingNotificationsEnabled: "false",
				constants.SettingPermissionAsked:      "true",
				constants.SettingGracePeriodMin:       "12",
				constants.SettingSound:                "false",
			},
			want: Settings{NotificationsEnabled: false, PermissionAsked: true, GracePeriodMin: 12, Sound: false},
		},
		{
			name: "unknown keys ignored",
			data: map[string]string{"theme": "dark"},
			want: DefaultSettings(),
		},
		{
			name:    "bad grace period",
			data:    map[string]string{constants.SettingGracePeriodMin: "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapToSettings(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MapToSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("MapToSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsToMapRoundTrip(t *testing.T) {
	s := Settings{NotificationsEnabled: false, PermissionAsked: true, GracePeriodMin: 30, Sound: true}
	got, err := MapToSettings(SettingsToMap(s))
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestSettings_Validate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("DefaultSettings().Validate() error = %v", err)
	}
	if err := (Settings{GracePeriodMin: 61}).Validate(); err == nil {
		t.Error("Validate() should reject grace periods over an hour")
	}
	if err := (Settings{GracePeriodMin: -1}).Validate(); err == nil {
		t.Error("Validate() should reject negative grace periods")
	}
}
