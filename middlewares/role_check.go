package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/utils"
)

// RequireCapability lets the request through only when the principal's role
// grants cap. Anonymous requests go to /login; a wrong role is flashed as
// unauthorized and also sent to /login.
func RequireCapability(cap models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !principal.Role.Can(cap) {
			utils.InfoLogger.WithField("user_id", principal.UserID).
				WithField("role", principal.Role).
				Warnf("Unauthorized access to %s", c.Request.URL.Path)
			utils.SetFlash(c, "danger", "Unauthorized access")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
