package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
	"github.com/sirupsen/logrus"
)

// MaxItemSlots is the number of item/quantity pairs on the order form.
const MaxItemSlots = 5

const (
	EventOrderCreated = "order_created"
	EventOrderClosed  = "order_closed"
)

type ItemSlot struct {
	Name     string
	Quantity string
}

// OrderForm is the submitted order form, already pulled out of the request.
type OrderForm struct {
	CustomerName    string
	PhoneNumber     string
	Items           [MaxItemSlots]ItemSlot
	PaymentMethod   string
	CardNumber      string
	ExpirationDate  string
	CVV             string
	DeliveryOption  string
	DeliveryAddress string
}

// OrderEvents receives order lifecycle events; kds.Hub satisfies it.
type OrderEvents interface {
	Publish(event string, payload interface{})
}

// Notifier sends the "order ready" message for an order.
type Notifier interface {
	SendOrderReady(ctx context.Context, orderID uint) (*MessageReceipt, error)
}

type OrderService struct {
	orders   repository.OrderRepository
	notifier Notifier
	events   OrderEvents
}

// NewOrderService wires the service; events may be nil.
func NewOrderService(orders repository.OrderRepository, notifier Notifier, events OrderEvents) *OrderService {
	return &OrderService{orders: orders, notifier: notifier, events: events}
}

// BuildOrderDetails joins the filled slots, in slot order, as "name x qty"
// lines. Slots with an empty item name are skipped.
func BuildOrderDetails(items []ItemSlot) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		qty := strings.TrimSpace(item.Quantity)
		if qty == "" {
			qty = "1"
		}
		lines = append(lines, fmt.Sprintf("%s x %s", name, qty))
	}
	return strings.Join(lines, "\n")
}

// CardLast4 keeps the last four digits of a card number and drops the rest.
func CardLast4(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}

func (f *OrderForm) validate() error {
	switch {
	case strings.TrimSpace(f.CustomerName) == "":
		return missingField("customer_name")
	case strings.TrimSpace(f.PaymentMethod) == "":
		return missingField("payment_method")
	case strings.TrimSpace(f.DeliveryOption) == "":
		return missingField("delivery_option")
	}
	return nil
}

// CreateOrder stores a new Open order owned by userID. The card number is
// reduced to its last four digits and the cvv is never stored.
func (s *OrderService) CreateOrder(ctx context.Context, form OrderForm, userID uint) (*models.Order, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerName:    strings.TrimSpace(form.CustomerName),
		PhoneNumber:     strings.TrimSpace(form.PhoneNumber),
		OrderDetails:    BuildOrderDetails(form.Items[:]),
		PaymentMethod:   strings.TrimSpace(form.PaymentMethod),
		CardLast4:       CardLast4(form.CardNumber),
		CardExpiry:      strings.TrimSpace(form.ExpirationDate),
		DeliveryOption:  strings.TrimSpace(form.DeliveryOption),
		DeliveryAddress: strings.TrimSpace(form.DeliveryAddress),
		UserID:          userID,
		Status:          models.OrderOpen,
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":      order.ID,
		"customer_name": order.CustomerName,
		"user_id":       userID,
	}).Info("Order created")

	s.publish(EventOrderCreated, order)
	return &order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// CloseOrder moves an Open order to Closed. Closing an already closed
// order changes nothing and reports changed=false.
func (s *OrderService) CloseOrder(ctx context.Context, id uint) (changed bool, err error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return false, err
	}
	if order.IsClosed() {
		utils.InfoLogger.WithField("order_id", id).Info("Order already closed")
		return false, nil
	}

	if err := s.orders.UpdateStatus(ctx, id, models.OrderClosed); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("close order: %w", err)
	}
	order.Status = models.OrderClosed

	utils.InfoLogger.WithField("order_id", id).Info("Order closed")
	s.publish(EventOrderClosed, *order)
	return true, nil
}

// Notify sends the order-ready message through the notifier.
func (s *OrderService) Notify(ctx context.Context, id uint) (*MessageReceipt, error) {
	receipt, err := s.notifier.SendOrderReady(ctx, id)
	if err != nil {
		utils.ErrorLogger.WithField("order_id", id).Errorf("WhatsApp notification failed: %v", err)
		return nil, err
	}
	return receipt, nil
}

func (s *OrderService) publish(event string, order models.Order) {
	if s.events != nil {
		s.events.Publish(event, order)
	}
}
