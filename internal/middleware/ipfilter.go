package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseBlocklist turns CIDR ranges and bare IPs into networks
func ParseBlocklist(entries []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid blocked IP %q", entry)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid blocked range %q: %w", entry, err)
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}

// IPFilterMiddleware rejects clients inside any blocked network. The client
// address comes from gin's ClientIP, so forwarded headers only count from
// trusted proxies.
func IPFilterMiddleware(blocked []*net.IPNet) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(blocked) == 0 {
			c.Next()
			return
		}

		ip := net.ParseIP(c.ClientIP())
		if ip == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		for _, ipNet := range blocked {
			if ipNet.Contains(ip) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		c.Next()
	}
}
