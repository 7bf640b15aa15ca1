package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pricingtypes "github.com/delibro/delibro/internal/domains/pricing/application/types"
	pricingports "github.com/delibro/delibro/internal/domains/pricing/ports"
	apierrors "github.com/delibro/delibro/internal/shared/errors"
)

// PricingAPI wires HTTP transport with parcel price estimation.
type PricingAPI struct {
	service pricingports.Service
}

// NewPricingAPI creates a PricingAPI backed by the provided service.
func NewPricingAPI(service pricingports.Service) PricingAPI {
	return PricingAPI{service: service}
}

// EstimateRequest is a route and parcel size to price.
type EstimateRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Size        string `json:"size,omitempty"`
}

// Quote is a priced route.
type Quote struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DistanceKm  int    `json:"distanceKm"`
	Size        string `json:"size"`
	Price       int    `json:"price"`
}

// Post /v1/pricing/estimate
// Price a parcel route
func (api *PricingAPI) Estimate(c *gin.Context) {
	var payload EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	quote, err := api.service.Estimate(c.Request.Context(), pricingtypes.EstimateInput{
		Origin:      payload.Origin,
		Destination: payload.Destination,
		Size:        payload.Size,
	})
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, Quote{
		Origin:      quote.Origin,
		Destination: quote.Destination,
		DistanceKm:  quote.DistanceKm,
		Size:        quote.Size,
		Price:       quote.Price,
	})
}

// Get /v1/pricing/locations
// List served districts
func (api *PricingAPI) Locations(c *gin.Context) {
	locations, err := api.service.Locations(c.Request.Context())
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}
