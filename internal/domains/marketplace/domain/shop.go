package domain

import (
	"errors"
	"strings"
	"time"
)

// SellerType classifies who runs a shop. The marketplace only admits
// individual sellers; company storefronts are rejected at onboarding.
type SellerType string

const SellerIndividual SellerType = "individual"

// Craftsmanship describes how a shop's goods are produced.
type Craftsmanship string

const (
	CraftHandmade Craftsmanship = "handmade"
	CraftHomemade Craftsmanship = "homemade"
)

var (
	ErrSellerNotIndividual  = errors.New("only individual sellers are allowed")
	ErrInvalidCraftsmanship = errors.New("craftsmanship must be handmade or homemade")
	ErrEmptyShopName        = errors.New("shop name is required")
	ErrNegativeMinimumOrder = errors.New("minimum order value must be greater or equal to zero")
)

// Shop represents an individual seller's storefront. Shops are immutable
// after onboarding; only their product catalog changes.
type Shop struct {
	ID                string
	Name              string
	SellerType        SellerType
	Craftsmanship     Craftsmanship
	Profile           string
	PickupAddress     string
	ContactEmail      string
	ContactPhone      string
	MinimumOrderValue float64
	CreatedAt         time.Time
}

// NewShop validates the onboarding invariants and builds a Shop. Empty
// sellerType and craftsmanship default to the only accepted seller type
// and to handmade respectively.
func NewShop(id, name string, sellerType SellerType, craftsmanship Craftsmanship, createdAt time.Time) (*Shop, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyShopName
	}
	if sellerType == "" {
		sellerType = SellerIndividual
	}
	if sellerType != SellerIndividual {
		return nil, ErrSellerNotIndividual
	}
	if craftsmanship == "" {
		craftsmanship = CraftHandmade
	}
	if craftsmanship != CraftHandmade && craftsmanship != CraftHomemade {
		return nil, ErrInvalidCraftsmanship
	}
	return &Shop{
		ID:            id,
		Name:          name,
		SellerType:    sellerType,
		Craftsmanship: craftsmanship,
		CreatedAt:     createdAt,
	}, nil
}

// SetMinimumOrderValue records the smallest basket total the shop accepts.
func (s *Shop) SetMinimumOrderValue(value float64) error {
	if value < 0 {
		return ErrNegativeMinimumOrder
	}
	s.MinimumOrderValue = value
	return nil
}

// Validate re-checks the seller policy, used when listing products under
// an existing shop.
func (s *Shop) Validate() error {
	if s.SellerType != SellerIndividual {
		return ErrSellerNotIndividual
	}
	switch s.Craftsmanship {
	case CraftHandmade, CraftHomemade:
		return nil
	default:
		return ErrInvalidCraftsmanship
	}
}
