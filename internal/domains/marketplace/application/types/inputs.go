package types

import "github.com/delibro/delibro/internal/domains/marketplace/domain"

// CreateShopInput carries the onboarding form fields.
type CreateShopInput struct {
	Name              string
	SellerType        string
	Craftsmanship     string
	Profile           string
	PickupAddress     string
	ContactEmail      string
	ContactPhone      string
	MinimumOrderValue float64
}

// CreateProductInput carries a new listing under an existing shop.
type CreateProductInput struct {
	ShopID                 string
	Name                   string
	Description            string
	Price                  float64
	Inventory              int
	HomemadeTag            bool
	SafetyNotes            string
	BannedCompanyMentioned bool
}

// UpdateProductInput is a partial update; nil fields stay unchanged.
type UpdateProductInput struct {
	ID     string
	Update domain.ProductUpdate
}

// CreateOrderInput carries a buyer's basket against a single shop.
type CreateOrderInput struct {
	ShopID          string
	Items           []domain.OrderItem
	DeliveryMethod  string
	ShippingAddress string
	BuyerEmail      string
}

// UpdateOrderStatusInput mutates order and/or shipment status; nil fields
// stay unchanged.
type UpdateOrderStatusInput struct {
	ID             string
	Status         *string
	ShipmentStatus *string
}
