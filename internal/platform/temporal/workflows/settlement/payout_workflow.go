package settlement

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/platform/temporal/sequences"
)

const (
	// PayoutWorkflowName is the public identifier for registering the workflow.
	PayoutWorkflowName = "settlement.workflows.Payout"
	// PayoutTaskQueue is the queue consumed by the worker processing settlement workflows.
	PayoutTaskQueue = "SETTLEMENT_PAYOUT"
)

// PayoutWorkflowInput captures the payload required to settle a transaction
// once its payout date arrives.
type PayoutWorkflowInput struct {
	TransactionID string
	PayoutDate    time.Time
	TraceID       string
}

// PayoutWorkflow sleeps until the transaction's payout date, then marks it
// paid. Marking is idempotent, so a replayed or manually re-run workflow is
// harmless.
func PayoutWorkflow(ctx workflow.Context, input PayoutWorkflowInput) (*domain.Transaction, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("PayoutWorkflow started", withTraceID(input.TraceID, "transactionId", input.TransactionID, "payoutDate", input.PayoutDate)...)

	if delay := input.PayoutDate.Sub(workflow.Now(ctx)); delay > 0 {
		if err := workflow.Sleep(ctx, delay); err != nil {
			logger.Error("PayoutWorkflow interrupted while waiting", withTraceID(input.TraceID, "transactionId", input.TransactionID, "error", err)...)
			return nil, err
		}
	}

	tx, err := sequences.RunSettlementPayoutSequence(ctx, input.TransactionID)
	if err != nil {
		logger.Error("PayoutWorkflow failed", withTraceID(input.TraceID, "transactionId", input.TransactionID, "error", err)...)
		return nil, err
	}
	logger.Info("PayoutWorkflow completed", withTraceID(input.TraceID, "transactionId", input.TransactionID)...)
	return tx, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
