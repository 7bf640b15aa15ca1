package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	settlementactivities "github.com/delibro/delibro/internal/platform/temporal/activities/settlement"
)

// RunSettlementPayoutSequence executes the activities that pay out a
// scheduled transaction.
func RunSettlementPayoutSequence(ctx workflow.Context, transactionID string) (*domain.Transaction, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("settlement payout sequence started", "transactionId", transactionID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var tx domain.Transaction
	err := workflow.ExecuteActivity(ctx, settlementactivities.MarkTransactionPaidActivityName, transactionID).Get(ctx, &tx)
	if err != nil {
		logger.Error("settlement payout sequence failed", "transactionId", transactionID, "error", err)
		return nil, err
	}
	logger.Info("settlement payout sequence completed", "transactionId", tx.ID)
	return &tx, nil
}
