package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "disabled": true, "off": true,
}

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateDownloads(config)...)
	validationErrors = append(validationErrors, validatePlaces(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when enable_file_log is set")
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	var validationErrors []string
	if u, err := url.Parse(config.Session.HomeURL); err != nil || u.Scheme == "" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("session.home_url must be an absolute URL (got %q)", config.Session.HomeURL))
	}
	if config.Session.BackForwardItems < 1 {
		validationErrors = append(validationErrors, "session.back_forward_items must be at least 1")
	}
	if config.Session.MaxSessions < 0 {
		validationErrors = append(validationErrors, "session.max_sessions must be non-negative")
	}
	return validationErrors
}

func validateDownloads(config *Config) []string {
	d := config.Downloads
	var validationErrors []string
	if d.InstanceDir == "" {
		validationErrors = append(validationErrors, "downloads.instance_dir cannot be empty")
	}
	if d.StartedNoticeTimeout < 0 {
		validationErrors = append(validationErrors, "downloads.started_notice_timeout must be non-negative")
	}
	if d.ProgressMinPercent < 0 || d.ProgressMinPercent > 100 {
		validationErrors = append(validationErrors, "downloads.progress_min_percent must be between 0 and 100")
	}
	if d.ProgressMinInterval < 0 {
		validationErrors = append(validationErrors, "downloads.progress_min_interval must be non-negative")
	}
	if d.RequestTimeout < 0 {
		validationErrors = append(validationErrors, "downloads.request_timeout must be non-negative")
	}
	return validationErrors
}

func validatePlaces(config *Config) []string {
	if config.Places.MaxResults < 1 {
		return []string{"places.max_results must be at least 1"}
	}
	return nil
}
