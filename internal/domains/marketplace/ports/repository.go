package ports

import (
	"context"
	"errors"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

var (
	ErrShopNotFound        = errors.New("shop not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Ledger persists the five marketplace collections. Implementations must
// apply PlaceOrder and SaveOrder atomically: either every write in the call
// lands or none does.
type Ledger interface {
	SaveShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]*domain.Shop, error)

	SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	// ListProducts filters by shop; an empty shopID returns every product.
	ListProducts(ctx context.Context, shopID string) ([]*domain.Product, error)

	// PlaceOrder applies an order creation in one shot: the decremented
	// product rows, the order itself, its settlement transaction, and the
	// order_placed notification.
	PlaceOrder(ctx context.Context, order *domain.Order, products []*domain.Product, tx *domain.Transaction, note *domain.Notification) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// SaveOrder updates an order and, when note is non-nil, appends the
	// notification in the same atomic step.
	SaveOrder(ctx context.Context, order *domain.Order, note *domain.Notification) (*domain.Order, error)
	ListOrders(ctx context.Context, shopID string) ([]*domain.Order, error)

	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	SaveTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	// ListTransactions joins through the shop's order ids; an empty shopID
	// returns every transaction.
	ListTransactions(ctx context.Context, shopID string) ([]*domain.Transaction, error)

	ListNotifications(ctx context.Context) ([]*domain.Notification, error)
}
