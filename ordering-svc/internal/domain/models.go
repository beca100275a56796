package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"is_available"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// TableIdentity scopes a cart and its total. Token and Number are separate
// namespaces; a non-empty Token always takes precedence.
type TableIdentity struct {
	Token  string `json:"token,omitempty"`
	Number string `json:"table_number,omitempty"`
}

func NewTableIdentity(token, number string) TableIdentity {
	return TableIdentity{
		Token:  strings.TrimSpace(token),
		Number: strings.TrimSpace(number),
	}
}

func (t TableIdentity) IsZero() bool {
	return t.Token == "" && t.Number == ""
}

type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CustomerInfo struct {
	Name  string `json:"customer_name"`
	Phone string `json:"customer_phone"`
	Notes string `json:"customer_notes"`
}

type OrderLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// OrderPayload is the body sent to the backend when placing an order.
// Blank customer fields are sent as null.
type OrderPayload struct {
	TableNumber   string      `json:"table_number"`
	TableToken    string      `json:"table_token"`
	Items         []OrderLine `json:"items"`
	CustomerName  *string     `json:"customer_name"`
	CustomerPhone *string     `json:"customer_phone"`
	CustomerNotes *string     `json:"customer_notes"`
}

type OrderConfirmation struct {
	OrderNumber string           `json:"order_number"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	PlacedAt    time.Time        `json:"placed_at"`
}

type TableRow struct {
	ID     int    `json:"id"`
	Number string `json:"table_number"`
	Token  string `json:"table_token,omitempty"`
}

type OrderItem struct {
	MenuItemID int             `json:"menu_item_id"`
	Name       string          `json:"name,omitempty"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type Order struct {
	ID            int             `json:"id"`
	OrderNumber   string          `json:"order_number"`
	TableID       int             `json:"table_id"`
	TableNumber   string          `json:"table_number,omitempty"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusPreparing: true,
	OrderStatusReady:     true,
	OrderStatusCompleted: true,
	OrderStatusCancelled: true,
}

var paymentStatuses = map[string]bool{
	PaymentStatusPending: true,
	PaymentStatusUnpaid:  true,
	PaymentStatusPaid:    true,
	PaymentStatusFailed:  true,
}

func ValidOrderStatus(status string) bool {
	return orderStatuses[status]
}

func ValidPaymentStatus(status string) bool {
	return paymentStatuses[status]
}

// Active reports whether staff still have to act on the order.
func (o Order) Active() bool {
	return o.OrderStatus != OrderStatusCompleted && o.OrderStatus != OrderStatusCancelled
}

type OrderEvent struct {
	Type        string          `json:"type"`
	Restaurant  string          `json:"restaurant"`
	TableNumber string          `json:"table_number"`
	OrderNumber string          `json:"order_number"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Timestamp   time.Time       `json:"timestamp"`
}
