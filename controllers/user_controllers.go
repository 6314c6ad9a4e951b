package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/services"
	"github.com/lin-avraham/Pizza2/utils"
)

type UserController struct {
	Auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{Auth: auth}
}

func (uc *UserController) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Login", nil)
}

// Login sets the session cookie and redirects to the role's home page.
func (uc *UserController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	principal, token, err := uc.Auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorLogger.Printf("Login error: %v", err)
		}
		render(c, http.StatusOK, "login.html", "Login", gin.H{
			"Flash": &utils.Flash{Category: "danger", Message: "Invalid username or password"},
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, principal.Role.HomePath())
}

// Logout always clears the session.
func (uc *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie(utils.SessionCookie); err == nil {
		uc.Auth.Logout(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
