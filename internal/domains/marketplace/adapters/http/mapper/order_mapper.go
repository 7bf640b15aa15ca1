package mapper

import (
	"time"

	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

// OrderItem is one basket line.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is the transport-layer shape of a placed order.
type Order struct {
	ID              string      `json:"id"`
	ShopID          string      `json:"shopId"`
	BuyerEmail      string      `json:"buyerEmail"`
	Items           []OrderItem `json:"items"`
	DeliveryMethod  string      `json:"deliveryMethod"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	Status          string      `json:"status"`
	ShipmentStatus  string      `json:"shipmentStatus"`
	Total           float64     `json:"total"`
	Fee             float64     `json:"fee"`
	Payout          float64     `json:"payout"`
	TrackingNumber  string      `json:"trackingNumber"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// CreateOrderRequest is the order placement payload.
type CreateOrderRequest struct {
	ShopID          string      `json:"shopId"`
	Items           []OrderItem `json:"items"`
	DeliveryMethod  string      `json:"deliveryMethod"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	BuyerEmail      string      `json:"buyerEmail"`
}

// UpdateOrderRequest mutates order and/or shipment status; absent fields
// stay unchanged.
type UpdateOrderRequest struct {
	Status         *string `json:"status,omitempty"`
	ShipmentStatus *string `json:"shipmentStatus,omitempty"`
}

// ToCreateOrderInput converts an order payload into an application input.
func ToCreateOrderInput(req CreateOrderRequest) types.CreateOrderInput {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return types.CreateOrderInput{
		ShopID:          req.ShopID,
		Items:           items,
		DeliveryMethod:  req.DeliveryMethod,
		ShippingAddress: req.ShippingAddress,
		BuyerEmail:      req.BuyerEmail,
	}
}

// ToUpdateOrderStatusInput converts a status transition payload.
func ToUpdateOrderStatusInput(id string, req UpdateOrderRequest) types.UpdateOrderStatusInput {
	return types.UpdateOrderStatusInput{
		ID:             id,
		Status:         req.Status,
		ShipmentStatus: req.ShipmentStatus,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return Order{
		ID:              order.ID,
		ShopID:          order.ShopID,
		BuyerEmail:      order.BuyerEmail,
		Items:           items,
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

// FromDomainOrders maps a slice of orders.
func FromDomainOrders(orders []*domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
