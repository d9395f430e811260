package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/caddyserver/certmagic"
	"github.com/thatcatcamp/buttonsmith/internal/logger"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	log       *logger.Logger
	certmagic *certmagic.Config
	issuer    *certmagic.ACMEIssuer
}

// NewManager creates a new TLS manager. Nothing is requested until Manage.
func NewManager(cfg *Config, log *logger.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Create certmagic config
	var magicCfg *certmagic.Config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return magicCfg, nil
		},
	})
	magicCfg = certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
	})

	// Configure ACME issuer
	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	issuer := certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
		CA:     ca,
		Email:  cfg.Email,
		Agreed: true,
	})
	magicCfg.Issuers = []certmagic.Issuer{issuer}

	return &Manager{
		cfg:       cfg,
		log:       log.With("component", "tls"),
		certmagic: magicCfg,
		issuer:    issuer,
	}, nil
}

// Domains returns the names certificates are managed for
func (m *Manager) Domains() []string {
	domains := make([]string, len(m.cfg.Domains))
	copy(domains, m.cfg.Domains)
	return domains
}

// Manage starts obtaining and renewing certificates in the background
func (m *Manager) Manage(ctx context.Context) error {
	m.log.With("domains", m.cfg.Domains).Info("managing certificates")
	if err := m.certmagic.ManageAsync(ctx, m.cfg.Domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}
	return nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}

// HTTPHandler answers ACME HTTP challenges and passes everything else to next
func (m *Manager) HTTPHandler(next http.Handler) http.Handler {
	return m.issuer.HTTPChallengeHandler(next)
}
