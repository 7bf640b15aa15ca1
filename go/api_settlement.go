package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	markethttpmapper "github.com/delibro/delibro/internal/domains/marketplace/adapters/http/mapper"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
)

// SettlementAPI wires HTTP transport with transactions and notifications.
type SettlementAPI struct {
	service marketports.Service
}

// NewSettlementAPI creates a SettlementAPI backed by the provided service.
func NewSettlementAPI(service marketports.Service) SettlementAPI {
	return SettlementAPI{service: service}
}

// Get /v1/transactions
// List transactions, optionally filtered by shopId
func (api *SettlementAPI) ListTransactions(c *gin.Context) {
	txs, err := api.service.ListTransactions(c.Request.Context(), c.Query("shopId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainTransactions(txs))
}

// Post /v1/transactions/:transactionId/settle
// Mark a scheduled transaction as paid
func (api *SettlementAPI) SettleTransaction(c *gin.Context) {
	tx, err := api.service.SettleTransaction(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainTransaction(tx))
}

// Get /v1/notifications
// List buyer notifications
func (api *SettlementAPI) ListNotifications(c *gin.Context) {
	notes, err := api.service.ListNotifications(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainNotifications(notes))
}
