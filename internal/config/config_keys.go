// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go focuses on YAML structure and loading; this file
// handles the CLI interface where config is accessed by string keys
// (e.g., "defaults.max_results").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"engine.library",
		"defaults.max_results",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "engine.library":
		return c.Engine.Library, nil
	case "defaults.max_results":
		return strconv.Itoa(c.MaxResults()), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "engine.library":
		c.Engine.Library = value
	case "defaults.max_results":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxResults || n > MaxMaxResults {
			return fmt.Errorf("%w: defaults.max_results must be an integer between %d and %d",
				ErrInvalidValue, MinMaxResults, MaxMaxResults)
		}
		c.Defaults.MaxResults = &n
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"engine.library":       c.Engine.Library,
		"defaults.max_results": strconv.Itoa(c.MaxResults()),
		"log.enabled":          strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "engine.library":
		return c.Engine.Library != ""
	case "defaults.max_results":
		return c.Defaults.MaxResults != nil
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
