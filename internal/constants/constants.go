package constants

const (
	AppName = "daykeep"
	Version = "v0.3.1"

	// DefaultDataPath is the default location of the persisted store.
	// A .json extension selects the JSON provider, .db selects SQLite.
	DefaultDataPath = "~/.config/daykeep/daykeep.json"

	// DefaultConfigPath is the default location of the optional TOML config file.
	DefaultConfigPath = "~/.config/daykeep/config.toml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the display format for food entry times (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daykeep-"
)
