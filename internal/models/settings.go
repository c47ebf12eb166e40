package models

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool `json:"notifications_enabled"` // whether reminders may be scheduled at all
	PermissionAsked      bool `json:"permission_asked"`      // whether a notification permission request has been made
	GracePeriodMin       int  `json:"grace_period_min"`      // how late a missed reminder may still be delivered
	Sound                bool `json:"sound"`                 // whether reminders request a sound
}

// DefaultSettings returns the settings a fresh database starts with
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		PermissionAsked:      constants.DefaultPermissionAsked,
		GracePeriodMin:       constants.DefaultGracePeriodMin,
		Sound:                constants.DefaultSound,
	}
}

// MapToSettings converts the key-value rows of the settings table to a Settings struct.
// Keys that are absent keep their default value.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingPermissionAsked:
			settings.PermissionAsked = value == "true"
		case constants.SettingGracePeriodMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.GracePeriodMin); err != nil {
				return Settings{}, fmt.Errorf("parsing grace_period_min: %w", err)
			}
		case constants.SettingSound:
			settings.Sound = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to key-value rows.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingPermissionAsked:      fmt.Sprintf("%v", settings.PermissionAsked),
		constants.SettingGracePeriodMin:       fmt.Sprintf("%d", settings.GracePeriodMin),
		constants.SettingSound:                fmt.Sprintf("%v", settings.Sound),
	}
}

func (s Settings) Validate() error {
	if s.GracePeriodMin < 0 || s.GracePeriodMin > 60 {
		return fmt.Errorf("grace period must be between 0 and 60 minutes")
	}
	return nil
}
