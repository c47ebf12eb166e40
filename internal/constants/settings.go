package constants

const (
	SettingNotificationsEnabled = "notifications_enabled"
	SettingPermissionAsked      = "permission_asked"
	SettingGracePeriodMin       = "grace_period_min"
	SettingSound                = "sound"

	DefaultNotificationsEnabled = true
	DefaultPermissionAsked      = false
	DefaultGracePeriodMin       = 5
	DefaultSound                = true
)
