package models

import "time"

type OrderStatus string

const (
	OrderOpen   OrderStatus = "Open"
	OrderClosed OrderStatus = "Closed"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerName    string      `gorm:"type:varchar(100);not null" json:"customer_name"`
	PhoneNumber     string      `gorm:"type:varchar(20)" json:"phone_number"`
	OrderDetails    string      `gorm:"type:text;not null" json:"order_details"`
	PaymentMethod   string      `gorm:"type:varchar(20);not null" json:"payment_method"`
	CardLast4       string      `gorm:"type:varchar(4)" json:"card_last4,omitempty"`
	CardExpiry      string      `gorm:"type:varchar(10)" json:"card_expiry,omitempty"`
	DeliveryOption  string      `gorm:"type:varchar(20);not null" json:"delivery_option"`
	DeliveryAddress string      `gorm:"type:text" json:"delivery_address"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'Open'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (o *Order) IsClosed() bool {
	return o.Status == OrderClosed
}
