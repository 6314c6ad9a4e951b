package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.Can(CapManageCatalog))
	assert.False(t, RoleAdmin.Can(CapFulfilOrders))
	assert.True(t, RoleOperator.Can(CapFulfilOrders))
	assert.False(t, RoleOperator.Can(CapPlaceOrder))
	assert.True(t, RoleCustomer.Can(CapPlaceOrder))
	assert.True(t, RoleCustomer.Can(CapWriteReview))
	assert.False(t, RoleCustomer.Can(CapFulfilOrders))
	assert.False(t, Role("chef").Can(CapPlaceOrder))
}

func TestParseRoleAndHome(t *testing.T) {
	r, err := ParseRole("operator")
	assert.NoError(t, err)
	assert.Equal(t, "/operator", r.HomePath())

	_, err = ParseRole("Admin")
	assert.Error(t, err)
	assert.Equal(t, "/login", Role("").HomePath())
}
