package settlement

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
)

// MarkTransactionPaidActivityName settles a scheduled transaction.
const MarkTransactionPaidActivityName = "settlement.activities.MarkTransactionPaid"

// Activities groups activities that operate on the settlement side of the
// marketplace.
type Activities struct {
	service marketports.Service
}

// NewActivities wires the marketplace service into the Temporal activities
// bundle.
func NewActivities(service marketports.Service) *Activities {
	return &Activities{service: service}
}

// MarkTransactionPaid flips a scheduled transaction to paid. Retries are safe
// because the service treats already-paid transactions as a no-op.
func (a *Activities) MarkTransactionPaid(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("settlement activity not initialized", "transactionId", transactionID)
		return nil, errors.New("settlement activity not initialized")
	}
	logger.Info("MarkTransactionPaid activity started", "transactionId", transactionID)
	tx, err := a.service.SettleTransaction(ctx, transactionID)
	if err != nil {
		logger.Error("MarkTransactionPaid activity failed", "transactionId", transactionID, "error", err)
		return nil, err
	}
	logger.Info("MarkTransactionPaid activity completed", "transactionId", tx.ID, "status", string(tx.SettlementStatus))
	return tx, nil
}
