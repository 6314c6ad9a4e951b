package utils

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const FlashCookie = "pizza_flash"

type Flash struct {
	Category string
	Message  string
}

// SetFlash stores a one-shot message shown by the next rendered page.
func SetFlash(c *gin.Context, category, message string) {
	value := url.QueryEscape(category) + "|" + url.QueryEscape(message)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, value, 0, "/", "", false, true)
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(FlashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	category, _ = url.QueryUnescape(category)
	message, _ = url.QueryUnescape(message)
	return &Flash{Category: category, Message: message}
}
