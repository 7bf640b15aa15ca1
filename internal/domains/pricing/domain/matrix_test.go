package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrix_CuratedDistances(t *testing.T) {
	m := NewMatrix(WithFillerSeed(1))

	km, ok := m.Distance("dhaka", "chattogram")
	require.True(t, ok)
	require.Equal(t, 298, km)

	// Symmetric lookup.
	km, ok = m.Distance("chattogram", "dhaka")
	require.True(t, ok)
	require.Equal(t, 298, km)

	km, ok = m.Distance("rajshahi", "rangpur")
	require.True(t, ok)
	require.Equal(t, 110, km)

	// Case-insensitive with surrounding space.
	km, ok = m.Distance(" Dhaka ", "Comilla")
	require.True(t, ok)
	require.Equal(t, 97, km)
}

func TestMatrix_UnknownDistrict(t *testing.T) {
	m := NewMatrix(WithFillerSeed(1))
	_, ok := m.Distance("dhaka", "atlantis")
	require.False(t, ok)
}

func TestMatrix_FillerIsSeededSymmetricAndBounded(t *testing.T) {
	a := NewMatrix(WithFillerSeed(7))
	b := NewMatrix(WithFillerSeed(7))

	districts := a.Districts()
	require.Len(t, districts, 64)

	hubs := map[string]bool{
		"dhaka": true, "chattogram": true, "rajshahi": true, "khulna": true,
		"barishal": true, "sylhet": true, "rangpur": true, "mymensingh": true,
		"comilla": true,
	}
	for i, origin := range districts {
		for _, destination := range districts[i+1:] {
			kmA, ok := a.Distance(origin, destination)
			require.True(t, ok, "%s -> %s", origin, destination)
			if !hubs[origin] || !hubs[destination] {
				require.GreaterOrEqual(t, kmA, 50)
				require.LessOrEqual(t, kmA, 500)
			}

			reverse, ok := a.Distance(destination, origin)
			require.True(t, ok)
			require.Equal(t, kmA, reverse)

			kmB, ok := b.Distance(origin, destination)
			require.True(t, ok)
			require.Equal(t, kmA, kmB)
		}
	}
}

func TestEstimatePrice(t *testing.T) {
	// 0.75*298 + 10*2.5 = 248.5, rounds half away from zero.
	price, err := EstimatePrice(298, SizeMedium)
	require.NoError(t, err)
	require.Equal(t, 249, price)

	price, err = EstimatePrice(100, SizeSmall)
	require.NoError(t, err)
	require.Equal(t, 90, price)

	price, err = EstimatePrice(100, SizeXL)
	require.NoError(t, err)
	require.Equal(t, 135, price)

	_, err = EstimatePrice(100, SizeClass("gigantic"))
	require.ErrorIs(t, err, ErrUnknownSizeClass)
}
