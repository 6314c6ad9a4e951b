package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/utils"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware writes one access line per request, tagged with the
// signed-in user when there is one. Must run after SessionAuth.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"client":  c.ClientIP(),
		}
		if p, ok := CurrentPrincipal(c); ok {
			fields["user_id"] = p.UserID
			fields["role"] = p.Role
		}

		entry := utils.InfoLogger.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error(path)
		case c.Writer.Status() >= 400:
			entry.Warn(path)
		default:
			entry.Info(path)
		}
	}
}
