package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDish(t *testing.T) {
	r, db := setupRouterForTest(t, testConfig(t))
	admin := login(t, r, "admin", "adminpass")

	w := do(r, postForm("/admin/add_dish", url.Values{
		"dish_name":        {"Margherita"},
		"dish_description": {"Tomato, mozzarella, basil"},
		"dish_price":       {"12.50"},
	}), admin)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var dish models.Dish
	require.NoError(t, db.First(&dish).Error)
	assert.Equal(t, "Margherita", dish.Name)
	assert.InDelta(t, 12.50, dish.Price, 0.001)

	// the flash set by the redirect is shown on the next page
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, ck := range w.Result().Cookies() {
		req.AddCookie(ck)
	}
	req.AddCookie(admin)
	page := httptest.NewRecorder()
	r.ServeHTTP(page, req)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Dish added successfully!")
	assert.Contains(t, page.Body.String(), "Margherita")
}

func TestAddDishInvalidPrice(t *testing.T) {
	r, db := setupRouterForTest(t, testConfig(t))
	admin := login(t, r, "admin", "adminpass")

	w := do(r, postForm("/admin/add_dish", url.Values{
		"dish_name":  {"Calzone"},
		"dish_price": {"cheap"},
	}), admin)
	assert.Equal(t, http.StatusFound, w.Code)

	var count int64
	db.Model(&models.Dish{}).Count(&count)
	assert.Zero(t, count)
}

func TestCustomerOrderPageListsDishes(t *testing.T) {
	r, db := setupRouterForTest(t, testConfig(t))
	require.NoError(t, db.Create(&models.Dish{Name: "Carbonara", Description: "Egg and pecorino", Price: 14}).Error)
	customer := login(t, r, "customer", "customerpass")

	w := do(r, httptest.NewRequest(http.MethodGet, "/customer_order", nil), customer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Carbonara")
	assert.Contains(t, w.Body.String(), "item_name_5")
}
