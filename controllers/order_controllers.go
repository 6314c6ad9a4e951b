package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/middlewares"
	"github.com/lin-avraham/Pizza2/services"
	"github.com/lin-avraham/Pizza2/utils"
)

type OrderController struct {
	Orders  *services.OrderService
	Tickets *services.TicketRenderer
}

func NewOrderController(orders *services.OrderService, tickets *services.TicketRenderer) *OrderController {
	return &OrderController{Orders: orders, Tickets: tickets}
}

func orderFormFromRequest(c *gin.Context) services.OrderForm {
	form := services.OrderForm{
		CustomerName:    c.PostForm("customer_name"),
		PhoneNumber:     c.PostForm("phone_number"),
		PaymentMethod:   c.PostForm("payment_method"),
		CardNumber:      c.PostForm("credit_card_number"),
		ExpirationDate:  c.PostForm("expiration_date"),
		CVV:             c.PostForm("cvv"),
		DeliveryOption:  c.PostForm("delivery_option"),
		DeliveryAddress: c.PostForm("address"),
	}
	for i := range form.Items {
		form.Items[i] = services.ItemSlot{
			Name:     c.PostForm(fmt.Sprintf("item_name_%d", i+1)),
			Quantity: c.PostForm(fmt.Sprintf("quantity_%d", i+1)),
		}
	}
	return form
}

// CreateOrder stores the submitted order and answers with {success, order_id}
// or {success:false, error}.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, services.ErrUnauthorized)
		return
	}

	order, err := oc.Orders.CreateOrder(c.Request.Context(), orderFormFromRequest(c), principal.UserID)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.RespondError(c, http.StatusBadRequest, verr)
			return
		}
		utils.ErrorLogger.Printf("Error creating order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to create order"))
		return
	}

	utils.RespondOrderCreated(c, http.StatusOK, order.ID)
}

// OperatorPage lists every order, open and closed.
func (oc *OrderController) OperatorPage(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("Error listing orders: %v", err)
		c.String(http.StatusInternalServerError, "could not load orders")
		return
	}
	render(c, http.StatusOK, "operator.html", "Operator", gin.H{"Orders": orders})
}

// CloseOrder moves an order from Open to Closed and returns to the operator page.
func (oc *OrderController) CloseOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		oc.notFound(c, c.Param("order_id"))
		return
	}

	changed, err := oc.Orders.CloseOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			oc.notFound(c, c.Param("order_id"))
			return
		}
		utils.ErrorLogger.Printf("Error closing order %d: %v", id, err)
		utils.SetFlash(c, "danger", fmt.Sprintf("Could not close order %d", id))
		c.Redirect(http.StatusFound, "/operator")
		return
	}

	if changed {
		utils.SetFlash(c, "success", fmt.Sprintf("Order %d closed successfully", id))
	} else {
		utils.SetFlash(c, "info", fmt.Sprintf("Order %d was already closed", id))
	}
	c.Redirect(http.StatusFound, "/operator")
}

// SendWhatsApp sends the order-ready message and answers with {success} or
// {success:false, error}.
func (oc *OrderController) SendWhatsApp(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if _, err := oc.Orders.Notify(c.Request.Context(), id); err != nil {
		var perr *services.ProviderError
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		case errors.As(err, &perr):
			utils.RespondError(c, http.StatusBadGateway, perr)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK)
}

// Ticket serves the printable kitchen ticket as a PDF.
func (oc *OrderController) Ticket(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		oc.notFound(c, c.Param("order_id"))
		return
	}

	order, err := oc.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			oc.notFound(c, c.Param("order_id"))
			return
		}
		utils.ErrorLogger.Printf("Error loading order %d: %v", id, err)
		c.String(http.StatusInternalServerError, "could not load order")
		return
	}

	pdf, err := oc.Tickets.Render(order)
	if err != nil {
		utils.ErrorLogger.Printf("Error rendering ticket for order %d: %v", id, err)
		c.String(http.StatusInternalServerError, "could not render ticket")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=order-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (oc *OrderController) notFound(c *gin.Context, raw string) {
	render(c, http.StatusNotFound, "not_found.html", "Not found", gin.H{
		"Message": fmt.Sprintf("Order %s does not exist.", raw),
	})
}
