package config

import "time"

// Config represents the complete configuration for browse.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	// Session controls tab history persistence and restoration.
	Session SessionConfig `mapstructure:"session" toml:"session"`
	// Downloads controls the download lifecycle and the HTTP engine.
	Downloads DownloadsConfig `mapstructure:"downloads" toml:"downloads"`
	Places    PlacesConfig    `mapstructure:"places" toml:"places"`
}

// DatabaseConfig holds the SQLite location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	MaxAge int    `mapstructure:"max_age" toml:"max_age"`

	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
}

// SessionConfig controls session persistence.
type SessionConfig struct {
	// HomeURL is loaded in tabs whose saved history is empty or unreadable.
	HomeURL string `mapstructure:"home_url" toml:"home_url"`
	// BackForwardItems caps each side of the back/forward menu.
	BackForwardItems int `mapstructure:"back_forward_items" toml:"back_forward_items"`
	// MaxSessions is how many saved sessions are kept; 0 keeps all.
	MaxSessions int `mapstructure:"max_sessions" toml:"max_sessions"`
}

// DownloadsConfig controls downloads.
type DownloadsConfig struct {
	// InstanceDir receives payloads while they download.
	InstanceDir          string        `mapstructure:"instance_dir" toml:"instance_dir"`
	StartedNoticeTimeout time.Duration `mapstructure:"started_notice_timeout" toml:"started_notice_timeout"`
	// ProgressMinPercent and ProgressMinInterval throttle journal progress
	// writes. Both zero writes every update.
	ProgressMinPercent  int           `mapstructure:"progress_min_percent" toml:"progress_min_percent"`
	ProgressMinInterval time.Duration `mapstructure:"progress_min_interval" toml:"progress_min_interval"`
	// NotifyErrors shows a notice when a transfer fails.
	NotifyErrors   bool          `mapstructure:"notify_errors" toml:"notify_errors"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" toml:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent" toml:"user_agent"`
}

// PlacesConfig controls the places store.
type PlacesConfig struct {
	MaxResults int `mapstructure:"max_results" toml:"max_results"`
}
