package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	markethttpmapper "github.com/delibro/delibro/internal/domains/marketplace/adapters/http/mapper"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
	apierrors "github.com/delibro/delibro/internal/shared/errors"
)

// OrderAPI wires HTTP transport with order placement and tracking.
type OrderAPI struct {
	service marketports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service marketports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /v1/orders
// Place an order against a shop
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload markethttpmapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	order, err := api.service.CreateOrder(c.Request.Context(), markethttpmapper.ToCreateOrderInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, markethttpmapper.FromDomainOrder(order))
}

// Get /v1/orders
// List orders, optionally filtered by shopId; analytics=true returns the
// sales summary instead.
func (api *OrderAPI) ListOrders(c *gin.Context) {
	shopID := c.Query("shopId")
	if c.Query("analytics") == "true" {
		summary, err := api.service.AnalyticsSummary(c.Request.Context(), shopID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, markethttpmapper.FromAnalyticsSummary(summary))
		return
	}
	orders, err := api.service.ListOrders(c.Request.Context(), shopID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainOrders(orders))
}

// Patch /v1/orders/:orderId
// Transition order and/or shipment status
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	var payload markethttpmapper.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	order, err := api.service.UpdateOrderStatus(c.Request.Context(), markethttpmapper.ToUpdateOrderStatusInput(c.Param("orderId"), payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainOrder(order))
}
