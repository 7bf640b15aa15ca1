package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	markethttpmapper "github.com/delibro/delibro/internal/domains/marketplace/adapters/http/mapper"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
	apierrors "github.com/delibro/delibro/internal/shared/errors"
)

// ShopAPI wires HTTP transport with shop onboarding.
type ShopAPI struct {
	service marketports.Service
}

// NewShopAPI creates a ShopAPI backed by the provided service.
func NewShopAPI(service marketports.Service) ShopAPI {
	return ShopAPI{service: service}
}

// Post /v1/shops
// Onboard a storefront
func (api *ShopAPI) CreateShop(c *gin.Context) {
	var payload markethttpmapper.CreateShopRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	shop, err := api.service.CreateShop(c.Request.Context(), markethttpmapper.ToCreateShopInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, markethttpmapper.FromDomainShop(shop))
}

// Get /v1/shops
// List storefronts
func (api *ShopAPI) ListShops(c *gin.Context) {
	shops, err := api.service.ListShops(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainShops(shops))
}
