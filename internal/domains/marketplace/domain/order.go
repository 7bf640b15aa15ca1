package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// ShipmentStatus tracks the parcel itself, independently of the order
// decision flow. Non-courier orders are considered delivered on creation.
type ShipmentStatus string

const (
	ShipmentLabelPending ShipmentStatus = "label_pending"
	ShipmentInTransit    ShipmentStatus = "in_transit"
	ShipmentDelivered    ShipmentStatus = "delivered"
)

// DeliveryMethod is the buyer's chosen fulfilment channel. The passenger
// method rides the parcel marketplace and is flagged for moderation review.
type DeliveryMethod string

const (
	DeliveryPickup    DeliveryMethod = "pickup"
	DeliveryCourier   DeliveryMethod = "courier"
	DeliveryPassenger DeliveryMethod = "passenger"
)

// PlatformFeeRate is the commission the marketplace retains per order.
const PlatformFeeRate = 0.07

var (
	ErrInvalidStatus         = errors.New("order status is invalid")
	ErrInvalidShipmentStatus = errors.New("shipment status is invalid")
	ErrInvalidDeliveryMethod = errors.New("delivery method is invalid")
	ErrCourierNeedsAddress   = errors.New("courier deliveries need a shipping address")
	ErrIllegalTransition     = errors.New("illegal order status transition")
	ErrEmptyOrder            = errors.New("order needs at least one item")
	ErrBelowMinimumOrder     = errors.New("order total is below the shop minimum")
)

// OrderItem is a (product, quantity) line within an order.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// Order is a buyer's purchase of one or more products from a single shop.
type Order struct {
	ID              string
	ShopID          string
	BuyerEmail      string
	Items           []OrderItem
	DeliveryMethod  DeliveryMethod
	ShippingAddress string
	Status          Status
	ShipmentStatus  ShipmentStatus
	Total           float64
	Fee             float64
	Payout          float64
	TrackingNumber  string
	CreatedAt       time.Time
}

// CalculateFees splits an order total into the platform commission and the
// seller payout. Payout is derived as total minus fee so the two always sum
// back exactly.
func CalculateFees(total float64) (fee, payout float64) {
	fee = total * PlatformFeeRate
	return fee, total - fee
}

// ValidDeliveryMethod reports whether the method is one of the known values.
func ValidDeliveryMethod(m DeliveryMethod) bool {
	switch m {
	case DeliveryPickup, DeliveryCourier, DeliveryPassenger:
		return true
	default:
		return false
	}
}

// ValidShipmentStatus reports whether the shipment status is known.
func ValidShipmentStatus(s ShipmentStatus) bool {
	switch s {
	case ShipmentLabelPending, ShipmentInTransit, ShipmentDelivered:
		return true
	default:
		return false
	}
}

// NextStatus checks the requested transition against the order state
// machine: placed -> accepted|rejected, accepted -> shipped -> delivered.
// Rejected and delivered are terminal.
func NextStatus(current, requested Status) (Status, error) {
	allowed := map[Status][]Status{
		StatusPlaced:   {StatusAccepted, StatusRejected},
		StatusAccepted: {StatusShipped},
		StatusShipped:  {StatusDelivered},
	}
	next, ok := allowed[current]
	if !ok {
		return "", fmt.Errorf("%w: %s is terminal", ErrIllegalTransition, current)
	}
	for _, s := range next {
		if s == requested {
			return requested, nil
		}
	}
	if requested != StatusAccepted && requested != StatusRejected &&
		requested != StatusShipped && requested != StatusDelivered && requested != StatusPlaced {
		return "", ErrInvalidStatus
	}
	return "", fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, requested)
}

// NewOrder validates the fulfilment choices and assembles an order in the
// placed state. Totals and fees are set by the caller once items are priced.
func NewOrder(id, shopID, buyerEmail string, items []OrderItem, method DeliveryMethod, shippingAddress, trackingNumber string, createdAt time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !ValidDeliveryMethod(method) {
		return nil, ErrInvalidDeliveryMethod
	}
	if method == DeliveryCourier && strings.TrimSpace(shippingAddress) == "" {
		return nil, ErrCourierNeedsAddress
	}
	shipment := ShipmentDelivered
	if method == DeliveryCourier {
		shipment = ShipmentLabelPending
	}
	return &Order{
		ID:              id,
		ShopID:          shopID,
		BuyerEmail:      buyerEmail,
		Items:           append([]OrderItem{}, items...),
		DeliveryMethod:  method,
		ShippingAddress: shippingAddress,
		Status:          StatusPlaced,
		ShipmentStatus:  shipment,
		TrackingNumber:  trackingNumber,
		CreatedAt:       createdAt,
	}, nil
}

// Price records the computed basket total and derives fee and payout.
func (o *Order) Price(total float64) {
	o.Total = total
	o.Fee, o.Payout = CalculateFees(total)
}
