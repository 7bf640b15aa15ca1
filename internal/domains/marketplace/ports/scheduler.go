package ports

import (
	"context"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

// SettlementScheduler arranges for a transaction to be marked paid once its
// payout date arrives. Scheduling is best-effort: a failure leaves the
// transaction in the scheduled state for the sweeper to pick up.
type SettlementScheduler interface {
	ScheduleSettlement(ctx context.Context, tx *domain.Transaction) error
}
