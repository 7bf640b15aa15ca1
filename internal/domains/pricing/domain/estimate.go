package domain

import (
	"errors"
	"math"
)

// SizeClass buckets a parcel for pricing.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeXL     SizeClass = "xl"
)

var (
	// ErrRouteNotFound flags a route the distance matrix cannot resolve,
	// including same-district routes.
	ErrRouteNotFound = errors.New("route not found")
	// ErrUnknownSizeClass flags a size outside the supported buckets.
	ErrUnknownSizeClass = errors.New("unknown size class")
)

// Multiplier returns the pricing weight of the size bucket.
func (s SizeClass) Multiplier() (float64, error) {
	switch s {
	case SizeSmall:
		return 1.5, nil
	case SizeMedium:
		return 2.5, nil
	case SizeLarge:
		return 4, nil
	case SizeXL:
		return 6, nil
	default:
		return 0, ErrUnknownSizeClass
	}
}

// EstimatePrice computes the delivery charge for a distance and parcel size.
// The charge is 0.75 per kilometer plus 10 times the size multiplier,
// rounded to the nearest whole currency unit.
func EstimatePrice(distanceKm int, size SizeClass) (int, error) {
	multiplier, err := size.Multiplier()
	if err != nil {
		return 0, err
	}
	return int(math.Round(0.75*float64(distanceKm) + 10*multiplier)), nil
}
