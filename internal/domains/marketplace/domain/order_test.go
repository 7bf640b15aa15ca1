package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalculateFees(t *testing.T) {
	fee, payout := CalculateFees(100)
	require.InDelta(t, 7.0, fee, 1e-9)
	require.InDelta(t, 93.0, payout, 1e-9)
	require.Equal(t, 100.0, fee+payout)
}

func TestNextStatus_AllowsForwardTransitions(t *testing.T) {
	cases := []struct {
		current   Status
		requested Status
	}{
		{StatusPlaced, StatusAccepted},
		{StatusPlaced, StatusRejected},
		{StatusAccepted, StatusShipped},
		{StatusShipped, StatusDelivered},
	}
	for _, tc := range cases {
		next, err := NextStatus(tc.current, tc.requested)
		require.NoError(t, err, "%s -> %s", tc.current, tc.requested)
		require.Equal(t, tc.requested, next)
	}
}

func TestNextStatus_RejectsIllegalTransitions(t *testing.T) {
	cases := []struct {
		current   Status
		requested Status
	}{
		{StatusPlaced, StatusShipped},
		{StatusPlaced, StatusDelivered},
		{StatusAccepted, StatusRejected},
		{StatusAccepted, StatusDelivered},
		{StatusShipped, StatusAccepted},
		{StatusRejected, StatusAccepted},
		{StatusDelivered, StatusShipped},
	}
	for _, tc := range cases {
		_, err := NextStatus(tc.current, tc.requested)
		require.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tc.current, tc.requested)
	}
}

func TestNextStatus_UnknownStatus(t *testing.T) {
	_, err := NextStatus(StatusPlaced, Status("lost"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewOrder_CourierNeedsAddress(t *testing.T) {
	items := []OrderItem{{ProductID: "p-1", Quantity: 1}}
	_, err := NewOrder("o-1", "s-1", "buyer@example.com", items, DeliveryCourier, "  ", "TRACK-1", time.Now())
	require.ErrorIs(t, err, ErrCourierNeedsAddress)
}

func TestNewOrder_ShipmentStatusByMethod(t *testing.T) {
	items := []OrderItem{{ProductID: "p-1", Quantity: 2}}

	courier, err := NewOrder("o-1", "s-1", "buyer@example.com", items, DeliveryCourier, "12 Mirpur Rd, Dhaka", "TRACK-1", time.Now())
	require.NoError(t, err)
	require.Equal(t, ShipmentLabelPending, courier.ShipmentStatus)
	require.Equal(t, StatusPlaced, courier.Status)

	pickup, err := NewOrder("o-2", "s-1", "buyer@example.com", items, DeliveryPickup, "", "TRACK-2", time.Now())
	require.NoError(t, err)
	require.Equal(t, ShipmentDelivered, pickup.ShipmentStatus)
}

func TestNewOrder_EmptyItems(t *testing.T) {
	_, err := NewOrder("o-1", "s-1", "buyer@example.com", nil, DeliveryPickup, "", "TRACK-1", time.Now())
	require.ErrorIs(t, err, ErrEmptyOrder)
}

func TestOrderPrice(t *testing.T) {
	items := []OrderItem{{ProductID: "p-1", Quantity: 1}}
	order, err := NewOrder("o-1", "s-1", "buyer@example.com", items, DeliveryPickup, "", "TRACK-1", time.Now())
	require.NoError(t, err)
	order.Price(200)
	require.InDelta(t, 14.0, order.Fee, 1e-9)
	require.InDelta(t, 186.0, order.Payout, 1e-9)
	require.Equal(t, 200.0, order.Total)
}
