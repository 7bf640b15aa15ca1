package domain

import "time"

// NotificationType names the buyer-facing events the ledger records.
type NotificationType string

const (
	NotifyOrderPlaced    NotificationType = "order_placed"
	NotifyOrderShipped   NotificationType = "order_shipped"
	NotifyOrderDelivered NotificationType = "order_delivered"
)

// Notification is an append-only event record tied to an order. Entries are
// never mutated or deleted.
type Notification struct {
	ID        string
	OrderID   string
	Type      NotificationType
	Recipient string
	CreatedAt time.Time
}

// NewNotification records an order event addressed to the buyer.
func NewNotification(id string, order *Order, kind NotificationType, createdAt time.Time) *Notification {
	return &Notification{
		ID:        id,
		OrderID:   order.ID,
		Type:      kind,
		Recipient: order.BuyerEmail,
		CreatedAt: createdAt,
	}
}
