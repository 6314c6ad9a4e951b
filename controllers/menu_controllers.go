package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/services"
	"github.com/lin-avraham/Pizza2/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
	Reviews *services.ReviewService
}

func NewMenuController(catalog *services.CatalogService, reviews *services.ReviewService) *MenuController {
	return &MenuController{Catalog: catalog, Reviews: reviews}
}

// AdminPage shows the dish form, current dishes and submitted reviews.
func (mc *MenuController) AdminPage(c *gin.Context) {
	ctx := c.Request.Context()
	dishes, err := mc.Catalog.ListDishes(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("Error listing dishes: %v", err)
	}
	reviews, err := mc.Reviews.ListReviews(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("Error listing reviews: %v", err)
	}
	render(c, http.StatusOK, "admin.html", "Admin", gin.H{
		"Dishes":  dishes,
		"Reviews": reviews,
	})
}

// AddDish inserts a dish and goes back to the admin page.
func (mc *MenuController) AddDish(c *gin.Context) {
	_, err := mc.Catalog.AddDish(c.Request.Context(),
		c.PostForm("dish_name"),
		c.PostForm("dish_description"),
		c.PostForm("dish_price"),
	)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.SetFlash(c, "danger", "Invalid dish: "+verr.Error())
		} else {
			utils.ErrorLogger.Printf("Error adding dish: %v", err)
			utils.SetFlash(c, "danger", "Could not add dish")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	utils.SetFlash(c, "success", "Dish added successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// CustomerOrderPage renders the order form listing every dish.
func (mc *MenuController) CustomerOrderPage(c *gin.Context) {
	dishes, err := mc.Catalog.ListDishes(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("Error listing dishes: %v", err)
		c.String(http.StatusInternalServerError, "could not load dishes")
		return
	}

	slots := make([]int, services.MaxItemSlots)
	for i := range slots {
		slots[i] = i + 1
	}
	render(c, http.StatusOK, "customer_order.html", "Order", gin.H{
		"Dishes": dishes,
		"Slots":  slots,
	})
}
