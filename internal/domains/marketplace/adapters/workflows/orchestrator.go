package workflows

import (
	"context"
	"errors"
	"fmt"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
	settlementworkflows "github.com/delibro/delibro/internal/platform/temporal/workflows/settlement"
)

var (
	_ ports.SettlementScheduler = (*TemporalSettlements)(nil)
	_ ports.SettlementScheduler = (*InlineSettlements)(nil)
)

// TemporalSettlements starts payout workflows on a Temporal cluster.
type TemporalSettlements struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSettlements wires a Temporal client into the scheduler.
func NewTemporalSettlements(c client.Client) *TemporalSettlements {
	return &TemporalSettlements{client: c, taskQueue: settlementworkflows.PayoutTaskQueue}
}

// ScheduleSettlement starts the durable timer that pays out the transaction
// on its payout date. The workflow ID is derived from the transaction ID, so
// a retried call lands on the already-running workflow and is treated as
// success.
func (o *TemporalSettlements) ScheduleSettlement(ctx context.Context, tx *domain.Transaction) error {
	if o == nil || o.client == nil {
		return errors.New("temporal settlements not configured")
	}
	if tx == nil {
		return errors.New("nil transaction")
	}
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("settlement-payout-%s", tx.ID),
		TaskQueue: o.taskQueue,
	}
	input := settlementworkflows.PayoutWorkflowInput{
		TransactionID: tx.ID,
		PayoutDate:    tx.PayoutDate,
		TraceID:       workflowTraceID(ctx),
	}
	_, err := o.client.ExecuteWorkflow(ctx, options, settlementworkflows.PayoutWorkflowName, input)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return err
	}
	return nil
}

// InlineSettlements is the no-op scheduler used when Temporal is unavailable.
// Overdue transactions are then picked up by the settlement sweeper instead.
type InlineSettlements struct{}

// NewInlineSettlements returns the fallback scheduler.
func NewInlineSettlements() *InlineSettlements {
	return &InlineSettlements{}
}

// ScheduleSettlement does nothing; settlement falls back to sweeping.
func (o *InlineSettlements) ScheduleSettlement(context.Context, *domain.Transaction) error {
	return nil
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
