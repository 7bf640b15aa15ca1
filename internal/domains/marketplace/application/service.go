package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
)

// Service orchestrates the marketplace ledger use cases. Order placement and
// product mutations run under a single mutual-exclusion boundary so two
// concurrent orders can never both pass an inventory check against the same
// stale quantity.
type Service struct {
	repo      ports.Ledger
	scheduler ports.SettlementScheduler
	logger    *slog.Logger

	now      func() time.Time
	newID    func() string
	tracking func() string

	// placing serializes the inventory check-then-decrement critical
	// section across all writers of a ledger.
	placing sync.Mutex
}

// Option customizes a Service.
type Option func(*Service)

// WithSettlementScheduler wires the payout scheduler used after order
// creation.
func WithSettlementScheduler(s ports.SettlementScheduler) Option {
	return func(svc *Service) { svc.scheduler = s }
}

// WithLogger injects a slog logger for best-effort side-effect warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(svc *Service) { svc.logger = logger }
}

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

// WithIDGenerator overrides entity id generation, used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(svc *Service) { svc.newID = newID }
}

// WithTrackingGenerator overrides tracking number generation, used by tests.
func WithTrackingGenerator(tracking func() string) Option {
	return func(svc *Service) { svc.tracking = tracking }
}

// NewService wires the ledger service with its dependencies.
func NewService(repo ports.Ledger, opts ...Option) *Service {
	svc := &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		tracking: func() string {
			return fmt.Sprintf("TRACK-%d", rand.IntN(100000))
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

var _ ports.Service = (*Service)(nil)

// CreateShop validates the seller policy and appends a new storefront.
func (s *Service) CreateShop(ctx context.Context, input types.CreateShopInput) (*domain.Shop, error) {
	shop, err := domain.NewShop(
		s.newID(),
		input.Name,
		domain.SellerType(input.SellerType),
		domain.Craftsmanship(input.Craftsmanship),
		s.now(),
	)
	if err != nil {
		return nil, mapError(err)
	}
	shop.Profile = input.Profile
	shop.PickupAddress = input.PickupAddress
	shop.ContactEmail = input.ContactEmail
	shop.ContactPhone = input.ContactPhone
	if err := shop.SetMinimumOrderValue(input.MinimumOrderValue); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.SaveShop(ctx, shop)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// ListShops returns every storefront.
func (s *Service) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	shops, err := s.repo.ListShops(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return shops, nil
}

// CreateProduct lists a new item under an existing shop, re-checking the
// seller policy and the homemade listing rules.
func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error) {
	shop, err := s.repo.GetShop(ctx, input.ShopID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := shop.Validate(); err != nil {
		return nil, mapError(err)
	}
	product, err := domain.NewProduct(
		s.newID(),
		shop.ID,
		input.Name,
		input.Price,
		input.Inventory,
		input.HomemadeTag,
		input.BannedCompanyMentioned,
		s.now(),
	)
	if err != nil {
		return nil, mapError(err)
	}
	product.Description = input.Description
	product.SafetyNotes = input.SafetyNotes
	saved, err := s.repo.SaveProduct(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateProduct merges a partial update over an existing product.
func (s *Service) UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*domain.Product, error) {
	s.placing.Lock()
	defer s.placing.Unlock()

	product, err := s.repo.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := product.ApplyUpdate(input.Update); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.SaveProduct(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// RemoveProduct deletes a product by id.
func (s *Service) RemoveProduct(ctx context.Context, id string) error {
	s.placing.Lock()
	defer s.placing.Unlock()

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

// ListProducts returns the catalog, optionally filtered by shop.
func (s *Service) ListProducts(ctx context.Context, shopID string) ([]*domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, shopID)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// CreateOrder places a buyer's basket. Every validation runs before any
// state changes; only then are inventory decrements, the order, its
// settlement transaction, and the order_placed notification applied, in one
// atomic repository call.
func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (*domain.Order, error) {
	s.placing.Lock()
	defer s.placing.Unlock()

	shop, err := s.repo.GetShop(ctx, input.ShopID)
	if err != nil {
		return nil, mapError(err)
	}
	catalog, err := s.repo.ListProducts(ctx, shop.ID)
	if err != nil {
		return nil, mapError(err)
	}
	byID := make(map[string]*domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	now := s.now()
	order, err := domain.NewOrder(
		s.newID(),
		shop.ID,
		input.BuyerEmail,
		input.Items,
		domain.DeliveryMethod(input.DeliveryMethod),
		input.ShippingAddress,
		s.tracking(),
		now,
	)
	if err != nil {
		return nil, mapError(err)
	}

	var total float64
	touched := make([]*domain.Product, 0, len(order.Items))
	for _, item := range order.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, mapError(fmt.Errorf("%w: %s", ports.ErrProductNotFound, item.ProductID))
		}
		if err := product.Reserve(item.Quantity); err != nil {
			return nil, mapError(err)
		}
		total += product.Price * float64(item.Quantity)
		touched = append(touched, product)
	}
	if total < shop.MinimumOrderValue {
		return nil, mapError(fmt.Errorf("%w: minimum order value is %g", domain.ErrBelowMinimumOrder, shop.MinimumOrderValue))
	}
	order.Price(total)

	tx := domain.NewTransaction(s.newID(), order, now)
	note := domain.NewNotification(s.newID(), order, domain.NotifyOrderPlaced, now)

	placed, err := s.repo.PlaceOrder(ctx, order, touched, tx, note)
	if err != nil {
		return nil, mapError(err)
	}
	s.scheduleSettlement(ctx, tx)
	return placed, nil
}

func (s *Service) scheduleSettlement(ctx context.Context, tx *domain.Transaction) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleSettlement(ctx, tx); err != nil && s.logger != nil {
		// The transaction stays scheduled; the sweeper settles it later.
		s.logger.Warn("failed to schedule settlement",
			slog.String("transaction.id", tx.ID),
			slog.String("error", err.Error()))
	}
}

// UpdateOrderStatus applies status and shipment-status changes. Reaching
// shipped forces the shipment in transit and appends an order_shipped
// notification; reaching delivered marks the shipment delivered and appends
// an order_delivered notification.
func (s *Service) UpdateOrderStatus(ctx context.Context, input types.UpdateOrderStatusInput) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	var note *domain.Notification
	statusChanged := false
	if input.Status != nil {
		next, err := domain.NextStatus(order.Status, domain.Status(*input.Status))
		if err != nil {
			return nil, mapError(err)
		}
		order.Status = next
		statusChanged = true
	}
	if input.ShipmentStatus != nil {
		requested := domain.ShipmentStatus(*input.ShipmentStatus)
		if !domain.ValidShipmentStatus(requested) {
			return nil, mapError(domain.ErrInvalidShipmentStatus)
		}
		order.ShipmentStatus = requested
	}
	// Side effects fire on the requested transition only, so a
	// shipment-only update never re-notifies or overrides the shipment
	// status of an already shipped order.
	if statusChanged {
		now := s.now()
		switch order.Status {
		case domain.StatusShipped:
			order.ShipmentStatus = domain.ShipmentInTransit
			note = domain.NewNotification(s.newID(), order, domain.NotifyOrderShipped, now)
		case domain.StatusDelivered:
			order.ShipmentStatus = domain.ShipmentDelivered
			note = domain.NewNotification(s.newID(), order, domain.NotifyOrderDelivered, now)
		}
	}
	saved, err := s.repo.SaveOrder(ctx, order, note)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// ListOrders returns orders, optionally filtered by shop.
func (s *Service) ListOrders(ctx context.Context, shopID string) ([]*domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx, shopID)
	if err != nil {
		return nil, mapError(err)
	}
	return orders, nil
}

// ListTransactions returns settlement records, optionally joined through a
// shop's orders.
func (s *Service) ListTransactions(ctx context.Context, shopID string) ([]*domain.Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, shopID)
	if err != nil {
		return nil, mapError(err)
	}
	return txs, nil
}

// SettleTransaction marks a scheduled transaction as paid. Settling an
// already-paid transaction is a no-op so retried payout activities stay
// idempotent.
func (s *Service) SettleTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := tx.MarkPaid(); err != nil {
		return tx, nil
	}
	saved, err := s.repo.SaveTransaction(ctx, tx)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// ListNotifications returns the append-only notification log.
func (s *Service) ListNotifications(ctx context.Context) ([]*domain.Notification, error) {
	notes, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return notes, nil
}

// AnalyticsSummary aggregates total sales, order count, a top-5 product
// leaderboard, and the suspicious-product list. Leaderboard ties break by
// product id so the order is stable.
func (s *Service) AnalyticsSummary(ctx context.Context, shopID string) (*types.AnalyticsSummary, error) {
	orders, err := s.repo.ListOrders(ctx, shopID)
	if err != nil {
		return nil, mapError(err)
	}
	products, err := s.repo.ListProducts(ctx, "")
	if err != nil {
		return nil, mapError(err)
	}
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	summary := &types.AnalyticsSummary{Suspicious: []*domain.Product{}}
	sold := map[string]int{}
	for _, order := range orders {
		summary.TotalSales += order.Total
		summary.OrderCount++
		for _, item := range order.Items {
			sold[item.ProductID] += item.Quantity
		}
	}

	ids := make([]string, 0, len(sold))
	for id := range sold {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if sold[ids[i]] != sold[ids[j]] {
			return sold[ids[i]] > sold[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > 5 {
		ids = ids[:5]
	}
	summary.Leaderboard = make([]types.LeaderboardEntry, 0, len(ids))
	for _, id := range ids {
		name := "Unknown"
		if p, ok := byID[id]; ok {
			name = p.Name
		}
		summary.Leaderboard = append(summary.Leaderboard, types.LeaderboardEntry{
			ProductName: name,
			Quantity:    sold[id],
		})
	}

	for _, p := range products {
		if p.BannedCompanyMentioned || !p.HomemadeTag {
			summary.Suspicious = append(summary.Suspicious, p)
		}
	}
	return summary, nil
}

// ModerationFlags returns products with banned-company mentions and orders
// placed over the not-yet-operational passenger delivery channel.
func (s *Service) ModerationFlags(ctx context.Context) (*types.ModerationFlags, error) {
	products, err := s.repo.ListProducts(ctx, "")
	if err != nil {
		return nil, mapError(err)
	}
	orders, err := s.repo.ListOrders(ctx, "")
	if err != nil {
		return nil, mapError(err)
	}
	flags := &types.ModerationFlags{
		SuspiciousProducts: []*domain.Product{},
		SuspiciousOrders:   []*domain.Order{},
	}
	for _, p := range products {
		if p.BannedCompanyMentioned {
			flags.SuspiciousProducts = append(flags.SuspiciousProducts, p)
		}
	}
	for _, o := range orders {
		if o.DeliveryMethod == domain.DeliveryPassenger {
			flags.SuspiciousOrders = append(flags.SuspiciousOrders, o)
		}
	}
	return flags, nil
}
