package config

import (
	"path/filepath"
	"time"
)

// Default configuration constants
const (
	defaultHomeURL          = "about:blank"
	defaultBackForwardItems = 15
	defaultMaxSessions      = 50

	defaultMaxLogAgeDays = 7 // days

	defaultStartedNoticeTimeout = 9 * time.Second
	defaultProgressMinPercent   = 1
	defaultProgressMinInterval  = 500 * time.Millisecond
	defaultRequestTimeout       = 30 * time.Second
	defaultUserAgent            = "browse/1.0"

	defaultPlacesMaxResults = 20
)

// getDefaultLogDir returns the default log directory, or "" when XDG
// resolution fails.
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

func getDefaultInstanceDir() string {
	dataDir, err := GetDataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dataDir, "instance")
}

// DefaultConfig returns the default configuration values for browse.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is resolved in Load.
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			MaxAge: defaultMaxLogAgeDays,
			LogDir: getDefaultLogDir(),
		},
		Session: SessionConfig{
			HomeURL:          defaultHomeURL,
			BackForwardItems: defaultBackForwardItems,
			MaxSessions:      defaultMaxSessions,
		},
		Downloads: DownloadsConfig{
			InstanceDir:          getDefaultInstanceDir(),
			StartedNoticeTimeout: defaultStartedNoticeTimeout,
			ProgressMinPercent:   defaultProgressMinPercent,
			ProgressMinInterval:  defaultProgressMinInterval,
			NotifyErrors:         true,
			RequestTimeout:       defaultRequestTimeout,
			UserAgent:            defaultUserAgent,
		},
		Places: PlacesConfig{
			MaxResults: defaultPlacesMaxResults,
		},
	}
}
