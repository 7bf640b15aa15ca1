package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProduct_Policy(t *testing.T) {
	_, err := NewProduct("p-1", "s-1", "Pickles", 12, 5, false, false, time.Now())
	require.ErrorIs(t, err, ErrNotHomemade)

	_, err = NewProduct("p-1", "s-1", "Pickles", 12, 5, true, true, time.Now())
	require.ErrorIs(t, err, ErrBannedCompany)

	_, err = NewProduct("p-1", "s-1", "Pickles", 12, -1, true, false, time.Now())
	require.ErrorIs(t, err, ErrNegativeInventory)

	product, err := NewProduct("p-1", "s-1", "Pickles", 12, 5, true, false, time.Now())
	require.NoError(t, err)
	require.Equal(t, 5, product.Inventory)
}

func TestApplyUpdate_CannotWeakenPolicy(t *testing.T) {
	product, err := NewProduct("p-1", "s-1", "Pickles", 12, 5, true, false, time.Now())
	require.NoError(t, err)

	notHomemade := false
	require.ErrorIs(t, product.ApplyUpdate(ProductUpdate{HomemadeTag: &notHomemade}), ErrNotHomemade)

	banned := true
	require.ErrorIs(t, product.ApplyUpdate(ProductUpdate{BannedCompanyMentioned: &banned}), ErrBannedCompany)

	price := 15.5
	inventory := 8
	require.NoError(t, product.ApplyUpdate(ProductUpdate{Price: &price, Inventory: &inventory}))
	require.Equal(t, 15.5, product.Price)
	require.Equal(t, 8, product.Inventory)
	require.Equal(t, "Pickles", product.Name)
}

func TestReserve(t *testing.T) {
	product, err := NewProduct("p-1", "s-1", "Pickles", 12, 3, true, false, time.Now())
	require.NoError(t, err)

	require.NoError(t, product.Reserve(2))
	require.Equal(t, 1, product.Inventory)

	err = product.Reserve(2)
	require.ErrorIs(t, err, ErrInsufficientInventory)
	var invErr *InsufficientInventoryError
	require.True(t, errors.As(err, &invErr))
	require.Equal(t, "Pickles", invErr.ProductName)
	require.Equal(t, 2, invErr.Requested)
	require.Equal(t, 1, invErr.Available)
	require.Equal(t, 1, product.Inventory)
}
