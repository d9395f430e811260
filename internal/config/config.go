// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// BUTTONSMITH_SERVER_HTTP_PORT overrides server.http_port, and so on
	v.SetEnvPrefix("BUTTONSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.public_url", "http://localhost:8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.redirect_https", false)
	v.SetDefault("server.trusted_proxies", []string{})

	// TLS defaults (certificates via ACME when enabled)
	v.SetDefault("tls.enabled", false)
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", filepath.Join(defaultDataDir(), "certs"))
	v.SetDefault("tls.staging", false)
	v.SetDefault("tls.domains", []string{})

	// Security defaults
	v.SetDefault("security.blocked_ips", []string{})

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(defaultDataDir(), "buttonsmith.db"))

	// Presets defaults (empty means built-ins only)
	v.SetDefault("presets.file", "")
	v.SetDefault("presets.watch", true)

	// Playground defaults
	v.SetDefault("playground.max_entries", 50)

	// Rate limit defaults for write endpoints
	v.SetDefault("ratelimit.requests", 60)
	v.SetDefault("ratelimit.interval", "1m")

	// Backup defaults (interval 0 disables scheduled backups)
	v.SetDefault("backups.path", filepath.Join(defaultDataDir(), "backups"))
	v.SetDefault("backups.interval", "24h")
	v.SetDefault("backups.keep", 10)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)

	// Render defaults
	v.SetDefault("render.selector", ".btn-like")
}

// DefaultPath is BUTTONSMITH_CONFIG if set, else ~/.buttonsmith/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("BUTTONSMITH_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".buttonsmith", "config.yaml"), nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".buttonsmith")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a list. A string value from the
// environment is split on whitespace.
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}

// Keys returns every known key, sorted
func Keys() []string {
	if v == nil {
		return nil
	}
	keys := v.AllKeys()
	sort.Strings(keys)
	return keys
}

// Entry is one effective setting and where its value came from: "env",
// "file" or "default".
type Entry struct {
	Key    string
	Value  string
	Source string
}

// Entries returns every key with its effective value, sorted by key
func Entries() []Entry {
	keys := Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{Key: key, Value: Format(key), Source: source(key)})
	}
	return entries
}

// Format renders a value for display. Lists are comma separated.
func Format(key string) string {
	if v == nil {
		return ""
	}
	switch val := v.Get(key).(type) {
	case []string:
		return strings.Join(val, ",")
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return v.GetString(key)
	}
}

func source(key string) string {
	if _, ok := os.LookupEnv(EnvName(key)); ok {
		return "env"
	}
	if v.InConfig(key) {
		return "file"
	}
	return "default"
}

// EnvName is the environment variable that overrides key
func EnvName(key string) string {
	return "BUTTONSMITH_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
