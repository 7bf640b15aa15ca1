package application

import (
	"context"
	"fmt"
	"strings"

	types "github.com/delibro/delibro/internal/domains/pricing/application/types"
	"github.com/delibro/delibro/internal/domains/pricing/domain"
	"github.com/delibro/delibro/internal/domains/pricing/ports"
)

// Service prices parcel routes against the district distance matrix.
type Service struct {
	matrix *domain.Matrix
}

// Option configures the pricing service.
type Option func(*Service)

// WithMatrix overrides the distance matrix, used by tests to fix the filler
// seed.
func WithMatrix(matrix *domain.Matrix) Option {
	return func(s *Service) {
		s.matrix = matrix
	}
}

// NewService builds the pricing service.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.matrix == nil {
		s.matrix = domain.NewMatrix()
	}
	return s
}

var _ ports.Service = (*Service)(nil)

// Estimate prices a route. Size defaults to medium when absent.
func (s *Service) Estimate(_ context.Context, input types.EstimateInput) (*types.Quote, error) {
	origin := strings.ToLower(strings.TrimSpace(input.Origin))
	destination := strings.ToLower(strings.TrimSpace(input.Destination))
	if origin == "" || destination == "" || origin == destination {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrRouteNotFound, origin, destination)
	}
	size := domain.SizeClass(strings.ToLower(strings.TrimSpace(input.Size)))
	if size == "" {
		size = domain.SizeMedium
	}
	distance, ok := s.matrix.Distance(origin, destination)
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrRouteNotFound, origin, destination)
	}
	price, err := domain.EstimatePrice(distance, size)
	if err != nil {
		return nil, err
	}
	return &types.Quote{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distance,
		Size:        string(size),
		Price:       price,
	}, nil
}

// Locations returns the served districts.
func (s *Service) Locations(context.Context) ([]string, error) {
	return s.matrix.Districts(), nil
}
