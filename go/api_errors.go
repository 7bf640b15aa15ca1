package delibroserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	marketapp "github.com/delibro/delibro/internal/domains/marketplace/application"
	marketdomain "github.com/delibro/delibro/internal/domains/marketplace/domain"
	pricingdomain "github.com/delibro/delibro/internal/domains/pricing/domain"
	apierrors "github.com/delibro/delibro/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondServiceError translates marketplace application errors into
// problem responses.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var inventoryErr *marketdomain.InsufficientInventoryError
	switch {
	case errors.As(err, &inventoryErr):
		respondProblem(c, apierrors.ErrInsufficientInventory.
			WithDetail(inventoryErr.Error()).
			WithExtension("product", inventoryErr.ProductName).
			WithExtension("requested", inventoryErr.Requested).
			WithExtension("available", inventoryErr.Available))
	case errors.Is(err, marketapp.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, marketapp.ErrPolicyViolation):
		respondProblem(c, apierrors.ErrPolicyViolation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

// respondPricingError translates pricing errors into problem responses.
func respondPricingError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, pricingdomain.ErrRouteNotFound):
		respondProblem(c, apierrors.ErrRouteNotFound.WithDetail(err.Error()))
	case errors.Is(err, pricingdomain.ErrUnknownSizeClass):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
