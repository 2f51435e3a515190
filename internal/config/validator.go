package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats   = []string{"json", "text"}
	validEnvironments = []string{"dev", "staging", "prod", "test"}
)

// Validate checks the loaded configuration for values that would only
// fail later, at first use.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel)
	}
	if !contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("LOG_FORMAT must be one of %s, got %q", strings.Join(validLogFormats, ", "), c.LogFormat)
	}
	if !contains(validEnvironments, strings.ToLower(c.Environment)) {
		return fmt.Errorf("ENVIRONMENT must be one of %s, got %q", strings.Join(validEnvironments, ", "), c.Environment)
	}
	if c.DataPath == "" {
		return fmt.Errorf("DATA_PATH must not be empty")
	}
	if c.SchemaPath == "" {
		return fmt.Errorf("DATA_SCHEMA_PATH must not be empty")
	}
	if c.PlanCacheSize <= 0 {
		return fmt.Errorf("PLAN_CACHE_SIZE must be positive, got %d", c.PlanCacheSize)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
