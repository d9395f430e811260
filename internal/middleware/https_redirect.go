// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirectMiddleware redirects plain HTTP requests to HTTPS. Behind a
// TLS-terminating proxy the scheme comes from X-Forwarded-Proto.
// Exceptions: /health, so load balancer probes keep working.
func HTTPSRedirectMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if already HTTPS
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Next()
			return
		}

		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		// GET and HEAD can follow a permanent redirect, others must keep their body
		status := http.StatusMovedPermanently
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			status = http.StatusPermanentRedirect
		}
		c.Redirect(status, "https://"+c.Request.Host+c.Request.URL.RequestURI())
		c.Abort()
	}
}
