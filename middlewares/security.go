package middlewares

import (
	"github.com/gin-gonic/gin"
)

const contentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'; " +
	"form-action 'self'; frame-ancestors 'none'"

var securityHeaders = map[string]string{
	"X-Frame-Options":         "DENY",
	"X-Content-Type-Options":  "nosniff",
	"Referrer-Policy":         "strict-origin-when-cross-origin",
	"Content-Security-Policy": contentSecurityPolicy,
}

// SecurityHeaders sets the browser hardening headers. Pages served to a
// signed-in user also carry Cache-Control: no-store since they show orders
// and reviews belonging to other people.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range securityHeaders {
			c.Header(k, v)
		}
		if _, ok := CurrentPrincipal(c); ok {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
