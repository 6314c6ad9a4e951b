package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/middlewares"
	"github.com/lin-avraham/Pizza2/utils"
)

// render executes a page with the shared layout data filled in.
func render(c *gin.Context, code int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if _, set := data["Flash"]; !set {
		data["Flash"] = utils.PopFlash(c)
	}
	if p, ok := middlewares.CurrentPrincipal(c); ok {
		data["Principal"] = p
	}
	c.HTML(code, page, data)
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
