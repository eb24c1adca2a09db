package models

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Order status values. Creation always starts at StatusPending; any value in the
// set may be written afterwards — the admin panel relies on free transitions for
// manual correction.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid status, in pipeline order.
var OrderStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// IsValidOrderStatus reports whether s is one of the six enumerated statuses.
func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentCashOnDelivery is currently the only supported payment method.
const PaymentCashOnDelivery = "cash_on_delivery"

// OrderItem is a single line of an order. Product name, image and price are
// snapshots taken at order time, so historical orders stay accurate after
// catalog edits; ProductID becomes nil if the product is later deleted.
type OrderItem struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID      string    `json:"order_id" gorm:"type:varchar(36);index;not null"`
	ProductID    *string   `json:"product_id" gorm:"type:varchar(36)"`
	ProductName  string    `json:"product_name" gorm:"type:varchar(255);not null"`
	ProductImage string    `json:"product_image"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"` // price * quantity, fixed at insert
	CreatedAt    time.Time `json:"created_at"`
}

// Order is a customer order together with its delivery and contact details.
// UserID is nil for guest checkouts.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;type:varchar(50);not null"`
	UserID          *string     `json:"user_id" gorm:"type:varchar(36);index"`
	CustomerName    string      `json:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerPhone   string      `json:"customer_phone" gorm:"type:varchar(50);not null"`
	CustomerEmail   string      `json:"customer_email" gorm:"type:varchar(255)"`
	DeliveryAddress string      `json:"delivery_address" gorm:"not null"`
	DeliveryCity    string      `json:"delivery_city" gorm:"type:varchar(100);not null"`
	DeliveryArea    string      `json:"delivery_area" gorm:"type:varchar(100)"`
	PostalCode      string      `json:"postal_code" gorm:"type:varchar(20)"`
	OrderNotes      string      `json:"order_notes"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(50);default:cash_on_delivery"`
	Status          string      `json:"status" gorm:"type:varchar(20);index;default:pending"`
	Subtotal        float64     `json:"subtotal"`
	ShippingCost    float64     `json:"shipping_cost"`
	Total           float64     `json:"total"` // subtotal + shipping_cost, fixed at creation
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderStats holds per-status order counts for the admin dashboard.
type OrderStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Confirmed  int64 `json:"confirmed"`
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
	Cancelled  int64 `json:"cancelled"`
}

const orderNumberCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber returns the human-readable external order identifier:
// a prefix, a millisecond timestamp and a short random suffix. Collisions are
// overwhelmingly unlikely but not enforced away at the data layer.
func GenerateOrderNumber() string {
	var suffix strings.Builder
	for i := 0; i < 5; i++ {
		suffix.WriteByte(orderNumberCharset[rand.Intn(len(orderNumberCharset))])
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix.String())
}
