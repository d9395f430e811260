package tls

import (
	"fmt"
	"net/url"
	"os"

	"github.com/thatcatcamp/buttonsmith/internal/config"
)

// Config holds TLS configuration
type Config struct {
	Email   string
	CertDir string
	Staging bool
	Domains []string
	Enabled bool
}

// LoadConfig loads TLS configuration from config system. With no tls.domains
// the host of server.public_url is used.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Email:   config.GetString("tls.email"),
		CertDir: config.GetString("tls.cert_dir"),
		Staging: config.GetBool("tls.staging"),
		Domains: config.GetStringSlice("tls.domains"),
		Enabled: config.GetBool("tls.enabled"),
	}

	if len(cfg.Domains) == 0 {
		if u, err := url.Parse(config.GetString("server.public_url")); err == nil && u.Hostname() != "" {
			cfg.Domains = []string{u.Hostname()}
		}
	}

	// Validate required fields if TLS is enabled
	if cfg.Enabled {
		if cfg.Email == "" {
			return nil, fmt.Errorf("tls.email is required when TLS is enabled")
		}
		if len(cfg.Domains) == 0 {
			return nil, fmt.Errorf("tls.domains or server.public_url is required when TLS is enabled")
		}
	}

	// Create cert directory if it doesn't exist
	if cfg.CertDir != "" {
		if err := os.MkdirAll(cfg.CertDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create cert directory: %w", err)
		}
	}

	return cfg, nil
}
