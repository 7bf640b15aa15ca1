package types

import "github.com/delibro/delibro/internal/domains/marketplace/domain"

// LeaderboardEntry is one row of the top-seller leaderboard.
type LeaderboardEntry struct {
	ProductName string
	Quantity    int
}

// AnalyticsSummary aggregates sales for a shop or the whole marketplace.
type AnalyticsSummary struct {
	TotalSales  float64
	OrderCount  int
	Leaderboard []LeaderboardEntry
	// Suspicious lists products missing the homemade tag or flagged with a
	// banned-company mention.
	Suspicious []*domain.Product
}

// ModerationFlags collects entities awaiting manual review.
type ModerationFlags struct {
	SuspiciousProducts []*domain.Product
	// SuspiciousOrders are passenger-delivery orders; that channel is not
	// operational yet and every use is reviewed.
	SuspiciousOrders []*domain.Order
}
