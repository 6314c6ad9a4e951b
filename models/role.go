package models

import "fmt"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleCustomer Role = "customer"
)

// Capability names an action a role may perform.
type Capability string

const (
	CapManageCatalog Capability = "manage_catalog"
	CapPlaceOrder    Capability = "place_order"
	CapWriteReview   Capability = "write_review"
	CapFulfilOrders  Capability = "fulfil_orders"
)

var capabilities = map[Role][]Capability{
	RoleAdmin:    {CapManageCatalog},
	RoleOperator: {CapFulfilOrders},
	RoleCustomer: {CapPlaceOrder, CapWriteReview},
}

var homePaths = map[Role]string{
	RoleAdmin:    "/admin",
	RoleOperator: "/operator",
	RoleCustomer: "/customer",
}

// ParseRole validates a stored or token-carried role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := capabilities[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Can(c Capability) bool {
	for _, have := range capabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}

// HomePath is where a freshly logged-in principal of this role lands.
func (r Role) HomePath() string {
	if p, ok := homePaths[r]; ok {
		return p
	}
	return "/login"
}
