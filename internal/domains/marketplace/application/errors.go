package application

import (
	"errors"
	"fmt"

	"github.com/delibro/delibro/internal/domains/marketplace/domain"
	"github.com/delibro/delibro/internal/domains/marketplace/ports"
)

var (
	// ErrNotFound signals an unknown shop, product, order, or transaction id.
	ErrNotFound = errors.New("not found")
	// ErrPolicyViolation signals a marketplace rule was broken: seller type,
	// craftsmanship, homemade tag, banned company, minimum order, courier
	// address, or an illegal status transition.
	ErrPolicyViolation = errors.New("marketplace policy violation")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ports.ErrShopNotFound),
		errors.Is(err, ports.ErrProductNotFound),
		errors.Is(err, ports.ErrOrderNotFound),
		errors.Is(err, ports.ErrTransactionNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, domain.ErrInsufficientInventory):
		// Keep the InsufficientInventoryError chain intact so callers can
		// read the offending product name.
		return err
	case errors.Is(err, domain.ErrSellerNotIndividual),
		errors.Is(err, domain.ErrInvalidCraftsmanship),
		errors.Is(err, domain.ErrEmptyShopName),
		errors.Is(err, domain.ErrNegativeMinimumOrder),
		errors.Is(err, domain.ErrNotHomemade),
		errors.Is(err, domain.ErrBannedCompany),
		errors.Is(err, domain.ErrNegativeInventory),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrInvalidDeliveryMethod),
		errors.Is(err, domain.ErrCourierNeedsAddress),
		errors.Is(err, domain.ErrBelowMinimumOrder),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidShipmentStatus),
		errors.Is(err, domain.ErrIllegalTransition):
		return fmt.Errorf("%w: %w", ErrPolicyViolation, err)
	}
	return err
}
