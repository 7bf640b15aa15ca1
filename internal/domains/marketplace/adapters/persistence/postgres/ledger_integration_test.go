//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
	"github.com/delibro/delibro/internal/platform/migrations"
)

func setupLedgerPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("delibro_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seedPgShopAndProduct(t *testing.T, ledger *Ledger) (*domain.Shop, *domain.Product) {
	t.Helper()
	ctx := context.Background()
	shop, err := domain.NewShop("s-1", "Nila's Kitchen", "", "", time.Now().UTC())
	require.NoError(t, err)
	_, err = ledger.SaveShop(ctx, shop)
	require.NoError(t, err)

	product, err := domain.NewProduct("p-1", shop.ID, "Mango Pickle", 30, 4, true, false, time.Now().UTC())
	require.NoError(t, err)
	_, err = ledger.SaveProduct(ctx, product)
	require.NoError(t, err)
	return shop, product
}

func TestLedger_ShopRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLedgerPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()
	shop, _ := seedPgShopAndProduct(t, ledger)

	fetched, err := ledger.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.Name, fetched.Name)
	assert.Equal(t, domain.SellerIndividual, fetched.SellerType)

	_, err = ledger.GetShop(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrShopNotFound)
}

func TestLedger_PlaceOrderPersistsAggregate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLedgerPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()
	shop, product := seedPgShopAndProduct(t, ledger)

	now := time.Now().UTC().Truncate(time.Second)
	order, err := domain.NewOrder("o-1", shop.ID, "buyer@example.com",
		[]domain.OrderItem{{ProductID: product.ID, Quantity: 2}},
		domain.DeliveryCourier, "House 7, Road 2, Dhanmondi, Dhaka", "TRACK-1", now)
	require.NoError(t, err)
	order.Price(60)
	product.Inventory -= 2
	tx := domain.NewTransaction("t-1", order, now)
	note := domain.NewNotification("n-1", order, domain.NotifyOrderPlaced, now)

	placed, err := ledger.PlaceOrder(ctx, order, []*domain.Product{product}, tx, note)
	require.NoError(t, err)
	assert.Equal(t, "o-1", placed.ID)

	fetched, err := ledger.GetOrder(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, fetched.Status)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, product.ID, fetched.Items[0].ProductID)
	assert.Equal(t, 2, fetched.Items[0].Quantity)

	stock, err := ledger.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stock.Inventory)

	txs, err := ledger.ListTransactions(ctx, shop.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.SettlementScheduled, txs[0].SettlementStatus)

	notes, err := ledger.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestLedger_SettleOverdue(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupLedgerPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()
	shop, product := seedPgShopAndProduct(t, ledger)

	past := time.Now().UTC().Add(-8 * 24 * time.Hour)
	order, err := domain.NewOrder("o-1", shop.ID, "buyer@example.com",
		[]domain.OrderItem{{ProductID: product.ID, Quantity: 1}},
		domain.DeliveryPickup, "", "TRACK-1", past)
	require.NoError(t, err)
	order.Price(30)
	tx := domain.NewTransaction("t-1", order, past)
	note := domain.NewNotification("n-1", order, domain.NotifyOrderPlaced, past)
	_, err = ledger.PlaceOrder(ctx, order, nil, tx, note)
	require.NoError(t, err)

	settled, err := ledger.SettleOverdue(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.EqualValues(t, 1, settled)

	paid, err := ledger.GetTransaction(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementPaid, paid.SettlementStatus)
}
