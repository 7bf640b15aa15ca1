package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
)

const tracerName = "github.com/delibro/delibro/internal/domains/marketplace/adapters/observability/service"

// Service decorates the marketplace ledger with tracing, logging, and
// metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

var _ ports.Service = (*Service)(nil)

// CreateShop onboards a storefront with instrumentation.
func (s *Service) CreateShop(ctx context.Context, input types.CreateShopInput) (*domain.Shop, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateShop", attribute.String("shop.name", input.Name))
	defer span.End()

	s.logInfo(ctx, "creating shop", slog.String("shop.name", input.Name))
	shop, err := s.inner.CreateShop(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create shop", slog.String("shop.name", input.Name))
	}
	s.metrics.recordShopCreated(ctx)
	s.logInfo(ctx, "shop created", slog.String("shop.id", shop.ID))
	return shop, nil
}

func (s *Service) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	ctx, span := s.startSpan(ctx, "Service.ListShops")
	defer span.End()

	shops, err := s.inner.ListShops(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list shops")
	}
	span.SetAttributes(attribute.Int("shop.result.count", len(shops)))
	return shops, nil
}

// CreateProduct lists an item with instrumentation.
func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateProduct", attribute.String("shop.id", input.ShopID))
	defer span.End()

	s.logInfo(ctx, "creating product", slog.String("shop.id", input.ShopID), slog.String("product.name", input.Name))
	product, err := s.inner.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("shop.id", input.ShopID))
	}
	s.metrics.recordProductCreated(ctx)
	s.logInfo(ctx, "product created", slog.String("product.id", product.ID))
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateProduct", attribute.String("product.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating product", slog.String("product.id", input.ID))
	product, err := s.inner.UpdateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.String("product.id", input.ID))
	}
	s.logInfo(ctx, "product updated", slog.String("product.id", product.ID))
	return product, nil
}

func (s *Service) RemoveProduct(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "Service.RemoveProduct", attribute.String("product.id", id))
	defer span.End()

	s.logInfo(ctx, "removing product", slog.String("product.id", id))
	if err := s.inner.RemoveProduct(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to remove product", slog.String("product.id", id))
	}
	s.logInfo(ctx, "product removed", slog.String("product.id", id))
	return nil
}

func (s *Service) ListProducts(ctx context.Context, shopID string) ([]*domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.ListProducts", attribute.String("shop.id", shopID))
	defer span.End()

	products, err := s.inner.ListProducts(ctx, shopID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products", slog.String("shop.id", shopID))
	}
	span.SetAttributes(attribute.Int("product.result.count", len(products)))
	return products, nil
}

// CreateOrder places an order with instrumentation; the order value and
// platform fee feed the revenue metrics.
func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateOrder",
		attribute.String("shop.id", input.ShopID),
		attribute.String("order.delivery_method", input.DeliveryMethod),
		attribute.Int("order.item_count", len(input.Items)))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.String("shop.id", input.ShopID), slog.Int("items", len(input.Items)))
	order, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.String("shop.id", input.ShopID))
	}
	s.metrics.recordOrderPlaced(ctx, order)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", order.ID),
		slog.Float64("order.total", order.Total),
		slog.Float64("order.fee", order.Fee))
	return order, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, input types.UpdateOrderStatusInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateOrderStatus", attribute.String("order.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.String("order.id", input.ID))
	order, err := s.inner.UpdateOrderStatus(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status", slog.String("order.id", input.ID))
	}
	s.metrics.recordOrderTransition(ctx, order.Status)
	s.logInfo(ctx, "order status updated",
		slog.String("order.id", order.ID),
		slog.String("order.status", string(order.Status)),
		slog.String("order.shipment_status", string(order.ShipmentStatus)))
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, shopID string) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.ListOrders", attribute.String("shop.id", shopID))
	defer span.End()

	orders, err := s.inner.ListOrders(ctx, shopID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.String("shop.id", shopID))
	}
	span.SetAttributes(attribute.Int("order.result.count", len(orders)))
	return orders, nil
}

func (s *Service) ListTransactions(ctx context.Context, shopID string) ([]*domain.Transaction, error) {
	ctx, span := s.startSpan(ctx, "Service.ListTransactions", attribute.String("shop.id", shopID))
	defer span.End()

	txs, err := s.inner.ListTransactions(ctx, shopID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list transactions", slog.String("shop.id", shopID))
	}
	span.SetAttributes(attribute.Int("transaction.result.count", len(txs)))
	return txs, nil
}

func (s *Service) SettleTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	ctx, span := s.startSpan(ctx, "Service.SettleTransaction", attribute.String("transaction.id", id))
	defer span.End()

	s.logInfo(ctx, "settling transaction", slog.String("transaction.id", id))
	tx, err := s.inner.SettleTransaction(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to settle transaction", slog.String("transaction.id", id))
	}
	s.metrics.recordSettlement(ctx)
	s.logInfo(ctx, "transaction settled",
		slog.String("transaction.id", tx.ID),
		slog.String("transaction.status", string(tx.SettlementStatus)))
	return tx, nil
}

func (s *Service) ListNotifications(ctx context.Context) ([]*domain.Notification, error) {
	ctx, span := s.startSpan(ctx, "Service.ListNotifications")
	defer span.End()

	notes, err := s.inner.ListNotifications(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list notifications")
	}
	span.SetAttributes(attribute.Int("notification.result.count", len(notes)))
	return notes, nil
}

func (s *Service) AnalyticsSummary(ctx context.Context, shopID string) (*types.AnalyticsSummary, error) {
	ctx, span := s.startSpan(ctx, "Service.AnalyticsSummary", attribute.String("shop.id", shopID))
	defer span.End()

	summary, err := s.inner.AnalyticsSummary(ctx, shopID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to compute analytics", slog.String("shop.id", shopID))
	}
	span.SetAttributes(
		attribute.Int("analytics.order_count", summary.OrderCount),
		attribute.Float64("analytics.total_sales", summary.TotalSales))
	return summary, nil
}

func (s *Service) ModerationFlags(ctx context.Context) (*types.ModerationFlags, error) {
	ctx, span := s.startSpan(ctx, "Service.ModerationFlags")
	defer span.End()

	flags, err := s.inner.ModerationFlags(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list moderation flags")
	}
	span.SetAttributes(
		attribute.Int("moderation.product_count", len(flags.SuspiciousProducts)),
		attribute.Int("moderation.order_count", len(flags.SuspiciousOrders)))
	return flags, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	shopsCreated    metric.Int64Counter
	productsCreated metric.Int64Counter
	ordersPlaced    metric.Int64Counter
	orderValue      metric.Float64Counter
	platformFees    metric.Float64Counter
	transitions     metric.Int64Counter
	settlements     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	shopsCreated, _ := m.Int64Counter("marketplace.shops.created", metric.WithDescription("Number of shops onboarded"))
	productsCreated, _ := m.Int64Counter("marketplace.products.created", metric.WithDescription("Number of products listed"))
	ordersPlaced, _ := m.Int64Counter("marketplace.orders.placed", metric.WithDescription("Number of orders placed"))
	orderValue, _ := m.Float64Counter("marketplace.orders.value", metric.WithDescription("Gross order value"))
	platformFees, _ := m.Float64Counter("marketplace.orders.fees", metric.WithDescription("Platform commission collected"))
	transitions, _ := m.Int64Counter("marketplace.orders.transitions", metric.WithDescription("Order status transitions"))
	settlements, _ := m.Int64Counter("marketplace.transactions.settled", metric.WithDescription("Transactions marked paid"))
	return serviceMetrics{
		shopsCreated:    shopsCreated,
		productsCreated: productsCreated,
		ordersPlaced:    ordersPlaced,
		orderValue:      orderValue,
		platformFees:    platformFees,
		transitions:     transitions,
		settlements:     settlements,
	}
}

func (m serviceMetrics) recordShopCreated(ctx context.Context) {
	addCounter(ctx, m.shopsCreated, 1)
}

func (m serviceMetrics) recordProductCreated(ctx context.Context) {
	addCounter(ctx, m.productsCreated, 1)
}

func (m serviceMetrics) recordOrderPlaced(ctx context.Context, order *domain.Order) {
	method := attribute.String("order.delivery_method", string(order.DeliveryMethod))
	addCounter(ctx, m.ordersPlaced, 1, method)
	if m.orderValue != nil {
		m.orderValue.Add(ctx, order.Total, metric.WithAttributes(method))
	}
	if m.platformFees != nil {
		m.platformFees.Add(ctx, order.Fee, metric.WithAttributes(method))
	}
}

func (m serviceMetrics) recordOrderTransition(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.transitions, 1, attribute.String("order.status", string(status)))
}

func (m serviceMetrics) recordSettlement(ctx context.Context) {
	addCounter(ctx, m.settlements, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}
