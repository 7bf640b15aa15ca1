package mapper

import (
	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
)

// LeaderboardEntry is one row of the top-seller leaderboard.
type LeaderboardEntry struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// AnalyticsSummary is the transport-layer sales report.
type AnalyticsSummary struct {
	TotalSales  float64            `json:"totalSales"`
	OrderCount  int                `json:"orderCount"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Suspicious  []Product          `json:"suspicious"`
}

// ModerationFlags is the transport-layer moderation report.
type ModerationFlags struct {
	SuspiciousProducts []Product `json:"suspiciousProducts"`
	SuspiciousOrders   []Order   `json:"suspiciousOrders"`
}

// FromAnalyticsSummary converts the application report into its transport
// representation.
func FromAnalyticsSummary(summary *types.AnalyticsSummary) AnalyticsSummary {
	if summary == nil {
		return AnalyticsSummary{Leaderboard: []LeaderboardEntry{}, Suspicious: []Product{}}
	}
	leaderboard := make([]LeaderboardEntry, 0, len(summary.Leaderboard))
	for _, entry := range summary.Leaderboard {
		leaderboard = append(leaderboard, LeaderboardEntry{ProductName: entry.ProductName, Quantity: entry.Quantity})
	}
	return AnalyticsSummary{
		TotalSales:  summary.TotalSales,
		OrderCount:  summary.OrderCount,
		Leaderboard: leaderboard,
		Suspicious:  FromDomainProducts(summary.Suspicious),
	}
}

// FromModerationFlags converts the moderation report into its transport
// representation.
func FromModerationFlags(flags *types.ModerationFlags) ModerationFlags {
	if flags == nil {
		return ModerationFlags{SuspiciousProducts: []Product{}, SuspiciousOrders: []Order{}}
	}
	return ModerationFlags{
		SuspiciousProducts: FromDomainProducts(flags.SuspiciousProducts),
		SuspiciousOrders:   FromDomainOrders(flags.SuspiciousOrders),
	}
}
