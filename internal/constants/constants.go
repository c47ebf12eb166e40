package constants

const (
	AppName            = "habitual"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitual/habitual.db"
	Version            = "v0.1.0"

	// ConnectionEnvVar holds a PostgreSQL connection string as an alternative to the keyring
	ConnectionEnvVar = "HABITUAL_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Habit defaults
	DefaultColor   = "Card-1"
	PaletteSize    = 7
	MaxTitleLength = 120

	// Reminder content
	ReminderTitle = "Habit Reminder"

	// Notify constants
	NotifierLockfileName   = "habitual-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.habitual"
	TraySecretHeader       = "X-Habitual-Secret"
	TrayExecutablePrefix   = "habitual-tray"
)
