package ports

import (
	"context"

	types "github.com/delibro/delibro/internal/domains/pricing/application/types"
)

// Service exposes parcel price estimation.
type Service interface {
	// Estimate prices a route and parcel size. Returns
	// domain.ErrRouteNotFound when the route cannot be resolved or the
	// origin equals the destination, domain.ErrUnknownSizeClass for an
	// unsupported size.
	Estimate(ctx context.Context, input types.EstimateInput) (*types.Quote, error)
	// Locations returns the served districts.
	Locations(ctx context.Context) ([]string, error)
}
