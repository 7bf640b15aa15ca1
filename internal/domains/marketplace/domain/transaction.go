package domain

import (
	"errors"
	"time"
)

// SettlementStatus tracks how far a transaction is through payout.
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementScheduled SettlementStatus = "scheduled"
	SettlementPaid      SettlementStatus = "paid"
)

// PayoutDelay is how long after order creation the seller payout runs.
const PayoutDelay = 7 * 24 * time.Hour

var ErrAlreadyPaid = errors.New("transaction already paid")

// Transaction is the financial settlement record tied 1:1 to an order.
// It is created once at order time and never deleted.
type Transaction struct {
	ID               string
	OrderID          string
	Amount           float64
	Fees             float64
	SettlementStatus SettlementStatus
	PayoutDate       time.Time
	CreatedAt        time.Time
}

// NewTransaction schedules settlement for a freshly placed order.
func NewTransaction(id string, order *Order, createdAt time.Time) *Transaction {
	return &Transaction{
		ID:               id,
		OrderID:          order.ID,
		Amount:           order.Total,
		Fees:             order.Fee,
		SettlementStatus: SettlementScheduled,
		PayoutDate:       createdAt.Add(PayoutDelay),
		CreatedAt:        createdAt,
	}
}

// MarkPaid moves a scheduled transaction to paid. Paying twice is reported
// so retrying settlement activities can treat it as already done.
func (t *Transaction) MarkPaid() error {
	if t.SettlementStatus == SettlementPaid {
		return ErrAlreadyPaid
	}
	t.SettlementStatus = SettlementPaid
	return nil
}
