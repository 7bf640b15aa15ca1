package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	types "github.com/delibro/delibro/internal/domains/pricing/application/types"
	"github.com/delibro/delibro/internal/domains/pricing/domain"
)

func newTestService() *Service {
	return NewService(WithMatrix(domain.NewMatrix(domain.WithFillerSeed(1))))
}

func TestEstimate_CuratedRoute(t *testing.T) {
	svc := newTestService()

	quote, err := svc.Estimate(context.Background(), types.EstimateInput{
		Origin:      "Dhaka",
		Destination: "Chattogram",
		Size:        "medium",
	})
	require.NoError(t, err)
	require.Equal(t, "dhaka", quote.Origin)
	require.Equal(t, "chattogram", quote.Destination)
	require.Equal(t, 298, quote.DistanceKm)
	require.Equal(t, 249, quote.Price)
}

func TestEstimate_SizeDefaultsToMedium(t *testing.T) {
	svc := newTestService()

	quote, err := svc.Estimate(context.Background(), types.EstimateInput{
		Origin:      "dhaka",
		Destination: "chattogram",
	})
	require.NoError(t, err)
	require.Equal(t, "medium", quote.Size)
	require.Equal(t, 249, quote.Price)
}

func TestEstimate_SameOriginAndDestination(t *testing.T) {
	svc := newTestService()

	_, err := svc.Estimate(context.Background(), types.EstimateInput{
		Origin:      "dhaka",
		Destination: "Dhaka",
		Size:        "small",
	})
	require.ErrorIs(t, err, domain.ErrRouteNotFound)
}

func TestEstimate_UnknownDistrict(t *testing.T) {
	svc := newTestService()

	_, err := svc.Estimate(context.Background(), types.EstimateInput{
		Origin:      "dhaka",
		Destination: "atlantis",
		Size:        "small",
	})
	require.ErrorIs(t, err, domain.ErrRouteNotFound)
}

func TestEstimate_UnknownSize(t *testing.T) {
	svc := newTestService()

	_, err := svc.Estimate(context.Background(), types.EstimateInput{
		Origin:      "dhaka",
		Destination: "chattogram",
		Size:        "gigantic",
	})
	require.ErrorIs(t, err, domain.ErrUnknownSizeClass)
}

func TestLocations(t *testing.T) {
	svc := newTestService()

	locations, err := svc.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 64)
	require.Contains(t, locations, "dhaka")
	require.Contains(t, locations, "thakurgaon")
}
