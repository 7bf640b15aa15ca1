package ports

import (
	"context"

	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

// Service exposes the marketplace ledger use cases to adapters.
type Service interface {
	CreateShop(ctx context.Context, input types.CreateShopInput) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]*domain.Shop, error)

	CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, shopID string) ([]*domain.Product, error)

	CreateOrder(ctx context.Context, input types.CreateOrderInput) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, input types.UpdateOrderStatusInput) (*domain.Order, error)
	ListOrders(ctx context.Context, shopID string) ([]*domain.Order, error)

	ListTransactions(ctx context.Context, shopID string) ([]*domain.Transaction, error)
	SettleTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListNotifications(ctx context.Context) ([]*domain.Notification, error)

	AnalyticsSummary(ctx context.Context, shopID string) (*types.AnalyticsSummary, error)
	ModerationFlags(ctx context.Context) (*types.ModerationFlags, error)
}
