package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger persists the marketplace collections in PostgreSQL using GORM.
type Ledger struct {
	db *gorm.DB
}

// NewLedger wires a PostgreSQL-backed ledger. Caller manages DB lifecycle.
func NewLedger(db *gorm.DB) *Ledger {
	ledger := &Ledger{db: db}
	if db != nil {
		_ = db.AutoMigrate(&shopRecord{}, &productRecord{}, &orderRecord{}, &transactionRecord{}, &notificationRecord{})
	}
	return ledger
}

type shopRecord struct {
	ID                string    `gorm:"primaryKey;column:id;size:64"`
	Name              string    `gorm:"column:name"`
	SellerType        string    `gorm:"column:seller_type;type:varchar(32)"`
	Craftsmanship     string    `gorm:"column:craftsmanship;type:varchar(32)"`
	Profile           string    `gorm:"column:profile"`
	PickupAddress     string    `gorm:"column:pickup_address"`
	ContactEmail      string    `gorm:"column:contact_email"`
	ContactPhone      string    `gorm:"column:contact_phone"`
	MinimumOrderValue float64   `gorm:"column:minimum_order_value"`
	CreatedAt         time.Time `gorm:"column:created_at;index"`
}

func (shopRecord) TableName() string { return "shops" }

type productRecord struct {
	ID                     string    `gorm:"primaryKey;column:id;size:64"`
	ShopID                 string    `gorm:"column:shop_id;size:64;index"`
	Name                   string    `gorm:"column:name"`
	Description            string    `gorm:"column:description"`
	Price                  float64   `gorm:"column:price"`
	Inventory              int       `gorm:"column:inventory"`
	HomemadeTag            bool      `gorm:"column:homemade_tag"`
	SafetyNotes            string    `gorm:"column:safety_notes"`
	BannedCompanyMentioned bool      `gorm:"column:banned_company_mentioned;index"`
	CreatedAt              time.Time `gorm:"column:created_at;index"`
}

func (productRecord) TableName() string { return "products" }

type orderRecord struct {
	ID              string         `gorm:"primaryKey;column:id;size:64"`
	ShopID          string         `gorm:"column:shop_id;size:64;index:idx_orders_shop_status"`
	BuyerEmail      string         `gorm:"column:buyer_email"`
	ItemProductIDs  pq.StringArray `gorm:"column:item_product_ids;type:text[]"`
	ItemQuantities  pq.Int64Array  `gorm:"column:item_quantities;type:bigint[]"`
	DeliveryMethod  string         `gorm:"column:delivery_method;type:varchar(32);index"`
	ShippingAddress string         `gorm:"column:shipping_address"`
	Status          string         `gorm:"column:status;type:varchar(32);index:idx_orders_shop_status"`
	ShipmentStatus  string         `gorm:"column:shipment_status;type:varchar(32)"`
	Total           float64        `gorm:"column:total"`
	Fee             float64        `gorm:"column:fee"`
	Payout          float64        `gorm:"column:payout"`
	TrackingNumber  string         `gorm:"column:tracking_number"`
	CreatedAt       time.Time      `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type transactionRecord struct {
	ID               string    `gorm:"primaryKey;column:id;size:64"`
	OrderID          string    `gorm:"column:order_id;size:64;uniqueIndex"`
	Amount           float64   `gorm:"column:amount"`
	Fees             float64   `gorm:"column:fees"`
	SettlementStatus string    `gorm:"column:settlement_status;type:varchar(32);index"`
	PayoutDate       time.Time `gorm:"column:payout_date;index"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (transactionRecord) TableName() string { return "transactions" }

type notificationRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	OrderID   string    `gorm:"column:order_id;size:64;index"`
	Type      string    `gorm:"column:type;type:varchar(32)"`
	Recipient string    `gorm:"column:recipient"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (notificationRecord) TableName() string { return "notifications" }

func (l *Ledger) ensureDB() error {
	if l == nil || l.db == nil {
		return errors.New("postgres ledger is not configured")
	}
	return nil
}

func (l *Ledger) SaveShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("shop is nil")
	}
	record := toShopRecord(shop)
	if err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return l.GetShop(ctx, record.ID)
}

func (l *Ledger) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var record shopRecord
	if err := l.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrShopNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (l *Ledger) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var records []shopRecord
	if err := l.db.WithContext(ctx).Order("created_at asc").Find(&records).Error; err != nil {
		return nil, err
	}
	shops := make([]*domain.Shop, 0, len(records))
	for i := range records {
		shops = append(shops, records[i].toDomain())
	}
	return shops, nil
}

func (l *Ledger) SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toProductRecord(product)
	if err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return l.GetProduct(ctx, record.ID)
}

func (l *Ledger) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := l.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrProductNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (l *Ledger) DeleteProduct(ctx context.Context, id string) error {
	if err := l.ensureDB(); err != nil {
		return err
	}
	result := l.db.WithContext(ctx).Delete(&productRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrProductNotFound
	}
	return nil
}

func (l *Ledger) ListProducts(ctx context.Context, shopID string) ([]*domain.Product, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	query := l.db.WithContext(ctx).Order("created_at asc")
	if shopID != "" {
		query = query.Where("shop_id = ?", shopID)
	}
	var records []productRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// PlaceOrder writes the decremented products, the order, its transaction,
// and the notification in a single database transaction.
func (l *Ledger) PlaceOrder(ctx context.Context, order *domain.Order, products []*domain.Product, tx *domain.Transaction, note *domain.Notification) (*domain.Order, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil || tx == nil || note == nil {
		return nil, errors.New("order, transaction, and notification are required")
	}
	err := l.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		for _, product := range products {
			record := toProductRecord(product)
			if err := dbTx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&record).Error; err != nil {
				return err
			}
		}
		orderRec := toOrderRecord(order)
		if err := dbTx.Create(&orderRec).Error; err != nil {
			return err
		}
		txRec := toTransactionRecord(tx)
		if err := dbTx.Create(&txRec).Error; err != nil {
			return err
		}
		noteRec := toNotificationRecord(note)
		return dbTx.Create(&noteRec).Error
	})
	if err != nil {
		return nil, err
	}
	return l.GetOrder(ctx, order.ID)
}

func (l *Ledger) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := l.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrOrderNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (l *Ledger) SaveOrder(ctx context.Context, order *domain.Order, note *domain.Notification) (*domain.Order, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	err := l.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		record := toOrderRecord(order)
		result := dbTx.Model(&orderRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
			"status":          record.Status,
			"shipment_status": record.ShipmentStatus,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrOrderNotFound
		}
		if note != nil {
			noteRec := toNotificationRecord(note)
			return dbTx.Create(&noteRec).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l.GetOrder(ctx, order.ID)
}

func (l *Ledger) ListOrders(ctx context.Context, shopID string) ([]*domain.Order, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	query := l.db.WithContext(ctx).Order("created_at asc")
	if shopID != "" {
		query = query.Where("shop_id = ?", shopID)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (l *Ledger) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var record transactionRecord
	if err := l.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrTransactionNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (l *Ledger) SaveTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, errors.New("transaction is nil")
	}
	record := toTransactionRecord(tx)
	if err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return l.GetTransaction(ctx, record.ID)
}

func (l *Ledger) ListTransactions(ctx context.Context, shopID string) ([]*domain.Transaction, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	query := l.db.WithContext(ctx).Order("transactions.created_at asc")
	if shopID != "" {
		query = query.
			Joins("JOIN orders ON orders.id = transactions.order_id").
			Where("orders.shop_id = ?", shopID)
	}
	var records []transactionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	txs := make([]*domain.Transaction, 0, len(records))
	for i := range records {
		txs = append(txs, records[i].toDomain())
	}
	return txs, nil
}

func (l *Ledger) ListNotifications(ctx context.Context) ([]*domain.Notification, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var records []notificationRecord
	if err := l.db.WithContext(ctx).Order("created_at asc").Find(&records).Error; err != nil {
		return nil, err
	}
	notes := make([]*domain.Notification, 0, len(records))
	for i := range records {
		notes = append(notes, records[i].toDomain())
	}
	return notes, nil
}

// SettleOverdue marks scheduled transactions whose payout date has passed
// as paid and returns how many rows changed. Used by the sweeper process.
func (l *Ledger) SettleOverdue(ctx context.Context, now time.Time) (int64, error) {
	if err := l.ensureDB(); err != nil {
		return 0, err
	}
	result := l.db.WithContext(ctx).Model(&transactionRecord{}).
		Where("settlement_status = ? AND payout_date <= ?", string(domain.SettlementScheduled), now).
		Update("settlement_status", string(domain.SettlementPaid))
	return result.RowsAffected, result.Error
}

func toShopRecord(shop *domain.Shop) shopRecord {
	return shopRecord{
		ID:                shop.ID,
		Name:              shop.Name,
		SellerType:        string(shop.SellerType),
		Craftsmanship:     string(shop.Craftsmanship),
		Profile:           shop.Profile,
		PickupAddress:     shop.PickupAddress,
		ContactEmail:      shop.ContactEmail,
		ContactPhone:      shop.ContactPhone,
		MinimumOrderValue: shop.MinimumOrderValue,
		CreatedAt:         shop.CreatedAt,
	}
}

func (r *shopRecord) toDomain() *domain.Shop {
	return &domain.Shop{
		ID:                r.ID,
		Name:              r.Name,
		SellerType:        domain.SellerType(r.SellerType),
		Craftsmanship:     domain.Craftsmanship(r.Craftsmanship),
		Profile:           r.Profile,
		PickupAddress:     r.PickupAddress,
		ContactEmail:      r.ContactEmail,
		ContactPhone:      r.ContactPhone,
		MinimumOrderValue: r.MinimumOrderValue,
		CreatedAt:         r.CreatedAt,
	}
}

func toProductRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:                     product.ID,
		ShopID:                 product.ShopID,
		Name:                   product.Name,
		Description:            product.Description,
		Price:                  product.Price,
		Inventory:              product.Inventory,
		HomemadeTag:            product.HomemadeTag,
		SafetyNotes:            product.SafetyNotes,
		BannedCompanyMentioned: product.BannedCompanyMentioned,
		CreatedAt:              product.CreatedAt,
	}
}

func (r *productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:                     r.ID,
		ShopID:                 r.ShopID,
		Name:                   r.Name,
		Description:            r.Description,
		Price:                  r.Price,
		Inventory:              r.Inventory,
		HomemadeTag:            r.HomemadeTag,
		SafetyNotes:            r.SafetyNotes,
		BannedCompanyMentioned: r.BannedCompanyMentioned,
		CreatedAt:              r.CreatedAt,
	}
}

func toOrderRecord(order *domain.Order) orderRecord {
	ids := make(pq.StringArray, 0, len(order.Items))
	quantities := make(pq.Int64Array, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
		quantities = append(quantities, int64(item.Quantity))
	}
	return orderRecord{
		ID:              order.ID,
		ShopID:          order.ShopID,
		BuyerEmail:      order.BuyerEmail,
		ItemProductIDs:  ids,
		ItemQuantities:  quantities,
		DeliveryMethod:  string(order.DeliveryMethod),
		ShippingAddress: order.ShippingAddress,
		Status:          string(order.Status),
		ShipmentStatus:  string(order.ShipmentStatus),
		Total:           order.Total,
		Fee:             order.Fee,
		Payout:          order.Payout,
		TrackingNumber:  order.TrackingNumber,
		CreatedAt:       order.CreatedAt,
	}
}

func (r *orderRecord) toDomain() *domain.Order {
	items := make([]domain.OrderItem, 0, len(r.ItemProductIDs))
	for i, id := range r.ItemProductIDs {
		quantity := 0
		if i < len(r.ItemQuantities) {
			quantity = int(r.ItemQuantities[i])
		}
		items = append(items, domain.OrderItem{ProductID: id, Quantity: quantity})
	}
	return &domain.Order{
		ID:              r.ID,
		ShopID:          r.ShopID,
		BuyerEmail:      r.BuyerEmail,
		Items:           items,
		DeliveryMethod:  domain.DeliveryMethod(r.DeliveryMethod),
		ShippingAddress: r.ShippingAddress,
		Status:          domain.Status(r.Status),
		ShipmentStatus:  domain.ShipmentStatus(r.ShipmentStatus),
		Total:           r.Total,
		Fee:             r.Fee,
		Payout:          r.Payout,
		TrackingNumber:  r.TrackingNumber,
		CreatedAt:       r.CreatedAt,
	}
}

func toTransactionRecord(tx *domain.Transaction) transactionRecord {
	return transactionRecord{
		ID:               tx.ID,
		OrderID:          tx.OrderID,
		Amount:           tx.Amount,
		Fees:             tx.Fees,
		SettlementStatus: string(tx.SettlementStatus),
		PayoutDate:       tx.PayoutDate,
		CreatedAt:        tx.CreatedAt,
	}
}

func (r *transactionRecord) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:               r.ID,
		OrderID:          r.OrderID,
		Amount:           r.Amount,
		Fees:             r.Fees,
		SettlementStatus: domain.SettlementStatus(r.SettlementStatus),
		PayoutDate:       r.PayoutDate,
		CreatedAt:        r.CreatedAt,
	}
}

func toNotificationRecord(note *domain.Notification) notificationRecord {
	return notificationRecord{
		ID:        note.ID,
		OrderID:   note.OrderID,
		Type:      string(note.Type),
		Recipient: note.Recipient,
		CreatedAt: note.CreatedAt,
	}
}

func (r *notificationRecord) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:        r.ID,
		OrderID:   r.OrderID,
		Type:      domain.NotificationType(r.Type),
		Recipient: r.Recipient,
		CreatedAt: r.CreatedAt,
	}
}
