package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger is an in-memory marketplace persistence adapter. Collections keep
// insertion order so listings are stable, and every read or write works on
// clones so callers never share state with the store.
type Ledger struct {
	mu            sync.RWMutex
	shops         []*domain.Shop
	products      []*domain.Product
	orders        []*domain.Order
	transactions  []*domain.Transaction
	notifications []*domain.Notification
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) SaveShop(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if shop == nil {
		return nil, errors.New("shop is nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	clone := *shop
	for i, existing := range l.shops {
		if existing.ID == clone.ID {
			l.shops[i] = &clone
			out := clone
			return &out, nil
		}
	}
	l.shops = append(l.shops, &clone)
	out := clone
	return &out, nil
}

func (l *Ledger) GetShop(_ context.Context, id string) (*domain.Shop, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, shop := range l.shops {
		if shop.ID == id {
			clone := *shop
			return &clone, nil
		}
	}
	return nil, ports.ErrShopNotFound
}

func (l *Ledger) ListShops(_ context.Context) ([]*domain.Shop, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list := make([]*domain.Shop, 0, len(l.shops))
	for _, shop := range l.shops {
		clone := *shop
		list = append(list, &clone)
	}
	return list, nil
}

func (l *Ledger) SaveProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.upsertProduct(product)
	clone := *product
	return &clone, nil
}

func (l *Ledger) upsertProduct(product *domain.Product) {
	clone := *product
	for i, existing := range l.products {
		if existing.ID == clone.ID {
			l.products[i] = &clone
			return
		}
	}
	l.products = append(l.products, &clone)
}

func (l *Ledger) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, product := range l.products {
		if product.ID == id {
			clone := *product
			return &clone, nil
		}
	}
	return nil, ports.ErrProductNotFound
}

func (l *Ledger) DeleteProduct(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, product := range l.products {
		if product.ID == id {
			l.products = append(l.products[:i], l.products[i+1:]...)
			return nil
		}
	}
	return ports.ErrProductNotFound
}

func (l *Ledger) ListProducts(_ context.Context, shopID string) ([]*domain.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list := make([]*domain.Product, 0, len(l.products))
	for _, product := range l.products {
		if shopID != "" && product.ShopID != shopID {
			continue
		}
		clone := *product
		list = append(list, &clone)
	}
	return list, nil
}

// PlaceOrder applies the order-creation writes in one critical section:
// decremented products, the order, its transaction, and the notification.
func (l *Ledger) PlaceOrder(_ context.Context, order *domain.Order, products []*domain.Product, tx *domain.Transaction, note *domain.Notification) (*domain.Order, error) {
	if order == nil || tx == nil || note == nil {
		return nil, errors.New("order, transaction, and notification are required")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, product := range products {
		l.upsertProduct(product)
	}
	orderClone := cloneOrder(order)
	l.orders = append(l.orders, orderClone)
	txClone := *tx
	l.transactions = append(l.transactions, &txClone)
	noteClone := *note
	l.notifications = append(l.notifications, &noteClone)
	return cloneOrder(orderClone), nil
}

func (l *Ledger) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, order := range l.orders {
		if order.ID == id {
			return cloneOrder(order), nil
		}
	}
	return nil, ports.ErrOrderNotFound
}

func (l *Ledger) SaveOrder(_ context.Context, order *domain.Order, note *domain.Notification) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.orders {
		if existing.ID == order.ID {
			l.orders[i] = cloneOrder(order)
			if note != nil {
				noteClone := *note
				l.notifications = append(l.notifications, &noteClone)
			}
			return cloneOrder(order), nil
		}
	}
	return nil, ports.ErrOrderNotFound
}

func (l *Ledger) ListOrders(_ context.Context, shopID string) ([]*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list := make([]*domain.Order, 0, len(l.orders))
	for _, order := range l.orders {
		if shopID != "" && order.ShopID != shopID {
			continue
		}
		list = append(list, cloneOrder(order))
	}
	return list, nil
}

func (l *Ledger) GetTransaction(_ context.Context, id string) (*domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, tx := range l.transactions {
		if tx.ID == id {
			clone := *tx
			return &clone, nil
		}
	}
	return nil, ports.ErrTransactionNotFound
}

func (l *Ledger) SaveTransaction(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if tx == nil {
		return nil, errors.New("transaction is nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	clone := *tx
	for i, existing := range l.transactions {
		if existing.ID == clone.ID {
			l.transactions[i] = &clone
			out := clone
			return &out, nil
		}
	}
	l.transactions = append(l.transactions, &clone)
	out := clone
	return &out, nil
}

func (l *Ledger) ListTransactions(_ context.Context, shopID string) ([]*domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var shopOrders map[string]bool
	if shopID != "" {
		shopOrders = make(map[string]bool)
		for _, order := range l.orders {
			if order.ShopID == shopID {
				shopOrders[order.ID] = true
			}
		}
	}
	list := make([]*domain.Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if shopOrders != nil && !shopOrders[tx.OrderID] {
			continue
		}
		clone := *tx
		list = append(list, &clone)
	}
	return list, nil
}

func (l *Ledger) ListNotifications(_ context.Context) ([]*domain.Notification, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list := make([]*domain.Notification, 0, len(l.notifications))
	for _, note := range l.notifications {
		clone := *note
		list = append(list, &clone)
	}
	return list, nil
}

// SettleOverdue marks every scheduled transaction whose payout date has
// passed as paid, returning the number settled.
func (l *Ledger) SettleOverdue(_ context.Context, now time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var settled int64
	for _, tx := range l.transactions {
		if tx.SettlementStatus == domain.SettlementScheduled && !tx.PayoutDate.After(now) {
			tx.SettlementStatus = domain.SettlementPaid
			settled++
		}
	}
	return settled, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.OrderItem{}, order.Items...)
	return &clone
}
