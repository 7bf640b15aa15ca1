package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	markethttpmapper "github.com/delibro/delibro/internal/domains/marketplace/adapters/http/mapper"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
	apierrors "github.com/delibro/delibro/internal/shared/errors"
)

// ProductAPI wires HTTP transport with product listings.
type ProductAPI struct {
	service marketports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service marketports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Post /v1/products
// List an item under a shop
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload markethttpmapper.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	product, err := api.service.CreateProduct(c.Request.Context(), markethttpmapper.ToCreateProductInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, markethttpmapper.FromDomainProduct(product))
}

// Get /v1/products
// List products, optionally filtered by shopId
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context(), c.Query("shopId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainProducts(products))
}

// Patch /v1/products/:productId
// Partially update a product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	var payload markethttpmapper.UpdateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	product, err := api.service.UpdateProduct(c.Request.Context(), markethttpmapper.ToUpdateProductInput(c.Param("productId"), payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromDomainProduct(product))
}

// Delete /v1/products/:productId
// Delete a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	if err := api.service.RemoveProduct(c.Request.Context(), c.Param("productId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
