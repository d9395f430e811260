package tls

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caddyserver/certmagic"
)

// CertificateStatus describes one provisioned certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// GetCertificateStatus reports the certificates already in storage for the
// configured issuer. Domains that are not provisioned yet are skipped.
func (m *Manager) GetCertificateStatus(ctx context.Context) ([]CertificateStatus, error) {
	statuses := make([]CertificateStatus, 0, len(m.cfg.Domains))
	for _, domain := range m.cfg.Domains {
		key := certmagic.StorageKeys.SiteCert(m.issuer.IssuerKey(), domain)
		data, err := m.certmagic.Storage.Load(ctx, key)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load certificate for %s: %w", domain, err)
		}

		cert, err := parseCertificate(data)
		if err != nil {
			return nil, fmt.Errorf("certificate for %s: %w", domain, err)
		}
		statuses = append(statuses, CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
		})
	}
	return statuses, nil
}

// parseCertificate reads the leaf, the first block of a PEM bundle
func parseCertificate(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, errors.New("no PEM certificate found")
	}
	return x509.ParseCertificate(block.Bytes)
}

// RenewalWindow is how close to expiry a certificate counts as due for renewal
const RenewalWindow = 30 * 24 * time.Hour

// Certificate states reported per domain
const (
	StateMissing = "missing"
	StateValid   = "valid"
	StateDue     = "renewal due"
	StateExpired = "expired"
)

// DomainReport is the state of one configured domain. Certificate is nil
// when nothing is provisioned yet.
type DomainReport struct {
	Domain      string
	State       string
	Certificate *CertificateStatus
}

// Report lists every configured domain in order, provisioned or not
func (m *Manager) Report(ctx context.Context, now time.Time) ([]DomainReport, error) {
	statuses, err := m.GetCertificateStatus(ctx)
	if err != nil {
		return nil, err
	}
	byDomain := make(map[string]CertificateStatus, len(statuses))
	for _, s := range statuses {
		byDomain[s.Domain] = s
	}

	reports := make([]DomainReport, 0, len(m.cfg.Domains))
	for _, domain := range m.cfg.Domains {
		status, ok := byDomain[domain]
		if !ok {
			reports = append(reports, DomainReport{Domain: domain, State: StateMissing})
			continue
		}
		state := StateValid
		switch {
		case !now.Before(status.NotAfter):
			state = StateExpired
		case status.NotAfter.Sub(now) <= RenewalWindow:
			state = StateDue
		}
		reports = append(reports, DomainReport{Domain: domain, State: state, Certificate: &status})
	}
	return reports, nil
}
