package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the marketplace ledger schema. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&shopRecord{},
		&productRecord{},
		&orderRecord{},
		&transactionRecord{},
		&notificationRecord{},
	)
}

// Shop schema mirrors the marketplace Postgres adapter.
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

// Order items are stored as parallel arrays, matching the adapter.
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
