package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/services"
	"github.com/lin-avraham/Pizza2/utils"
)

const principalKey = "principal"

// SessionAuth resolves the session cookie into a request-scoped principal.
// Requests without a valid session continue anonymously.
func SessionAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookie)
		if err == nil && token != "" {
			principal, err := auth.Resolve(c.Request.Context(), token)
			if err == nil {
				c.Set(principalKey, principal)
			}
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal, if any.
func CurrentPrincipal(c *gin.Context) (*models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*models.Principal)
	return p, ok && p != nil
}

// RequireLogin sends anonymous requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
