package mapper

import (
	"time"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

// Transaction is the transport-layer shape of a settlement record.
type Transaction struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"orderId"`
	Amount           float64   `json:"amount"`
	Fees             float64   `json:"fees"`
	SettlementStatus string    `json:"settlementStatus"`
	PayoutDate       time.Time `json:"payoutDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Notification is the transport-layer shape of a buyer notification.
type Notification struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainTransaction converts a domain transaction to the transport
// representation.
func FromDomainTransaction(tx *domain.Transaction) Transaction {
	if tx == nil {
		return Transaction{}
	}
	return Transaction{
		ID:               tx.ID,
		OrderID:          tx.OrderID,
		Amount:           tx.Amount,
		Fees:             tx.Fees,
		SettlementStatus: string(tx.SettlementStatus),
		PayoutDate:       tx.PayoutDate,
		CreatedAt:        tx.CreatedAt,
	}
}

// FromDomainTransactions maps a slice of transactions.
func FromDomainTransactions(txs []*domain.Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromDomainTransaction(tx))
	}
	return out
}

// FromDomainNotification converts a domain notification to the transport
// representation.
func FromDomainNotification(note *domain.Notification) Notification {
	if note == nil {
		return Notification{}
	}
	return Notification{
		ID:        note.ID,
		OrderID:   note.OrderID,
		Type:      string(note.Type),
		Recipient: note.Recipient,
		CreatedAt: note.CreatedAt,
	}
}

// FromDomainNotifications maps a slice of notifications.
func FromDomainNotifications(notes []*domain.Notification) []Notification {
	out := make([]Notification, 0, len(notes))
	for _, note := range notes {
		out = append(out, FromDomainNotification(note))
	}
	return out
}
