package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON acknowledgement returned by the form endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	OrderID *uint  `json:"order_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func RespondSuccess(c *gin.Context, code int) {
	c.JSON(code, Envelope{Success: true})
}

func RespondOrderCreated(c *gin.Context, code int, orderID uint) {
	c.JSON(code, Envelope{Success: true, OrderID: &orderID})
}

func RespondError(c *gin.Context, code int, err error) {
	env := Envelope{Success: false}
	if err != nil {
		env.Error = err.Error()
	}
	c.JSON(code, env)
}
