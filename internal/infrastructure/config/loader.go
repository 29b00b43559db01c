package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/browse/config.toml and BROWSE_* environment variables.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// BROWSE_DATABASE_PATH, BROWSE_DOWNLOADS_INSTANCE_DIR, ...
	v.SetEnvPrefix("BROWSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "BROWSE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BROWSE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BROWSE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BROWSE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default file first when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, fills derived paths, normalizes and validates.
// Callers hold m.mu for write.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "text"
	}

	config.Session.HomeURL = strings.TrimSpace(config.Session.HomeURL)
	if config.Session.HomeURL == "" {
		config.Session.HomeURL = defaultHomeURL
	}

	if config.Downloads.InstanceDir == "" {
		config.Downloads.InstanceDir = getDefaultInstanceDir()
	}
	config.Downloads.UserAgent = strings.TrimSpace(config.Downloads.UserAgent)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults registers defaults in Viper. Durations are registered as
// strings so the generated file stays readable.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setSessionDefaults(defaults)
	m.setDownloadsDefaults(defaults)
	m.viper.SetDefault("places.max_results", defaults.Places.MaxResults)
	// database.path is resolved in decode.
	m.viper.SetDefault("database.path", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
}

func (m *Manager) setSessionDefaults(defaults *Config) {
	m.viper.SetDefault("session.home_url", defaults.Session.HomeURL)
	m.viper.SetDefault("session.back_forward_items", defaults.Session.BackForwardItems)
	m.viper.SetDefault("session.max_sessions", defaults.Session.MaxSessions)
}

func (m *Manager) setDownloadsDefaults(defaults *Config) {
	d := defaults.Downloads
	m.viper.SetDefault("downloads.instance_dir", d.InstanceDir)
	m.viper.SetDefault("downloads.started_notice_timeout", d.StartedNoticeTimeout.String())
	m.viper.SetDefault("downloads.progress_min_percent", d.ProgressMinPercent)
	m.viper.SetDefault("downloads.progress_min_interval", d.ProgressMinInterval.String())
	m.viper.SetDefault("downloads.notify_errors", d.NotifyErrors)
	m.viper.SetDefault("downloads.request_timeout", d.RequestTimeout.String())
	m.viper.SetDefault("downloads.user_agent", d.UserAgent)
}
