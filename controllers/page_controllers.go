package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", "Home", nil)
}

func About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", "About", nil)
}

func Menu(c *gin.Context) {
	render(c, http.StatusOK, "menu.html", "Menu", nil)
}

func CustomerHome(c *gin.Context) {
	render(c, http.StatusOK, "customer.html", "Customer", nil)
}

func CustomerReviewPage(c *gin.Context) {
	render(c, http.StatusOK, "customer_review.html", "Review", nil)
}
