package mapper

import (
	"time"

	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

// Shop is the transport-layer shape of a storefront.
type Shop struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SellerType        string    `json:"sellerType"`
	Craftsmanship     string    `json:"craftsmanship"`
	Profile           string    `json:"profile,omitempty"`
	PickupAddress     string    `json:"pickupAddress,omitempty"`
	ContactEmail      string    `json:"contactEmail,omitempty"`
	ContactPhone      string    `json:"contactPhone,omitempty"`
	MinimumOrderValue float64   `json:"minimumOrderValue"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CreateShopRequest is the onboarding payload.
type CreateShopRequest struct {
	Name              string  `json:"name"`
	SellerType        string  `json:"sellerType,omitempty"`
	Craftsmanship     string  `json:"craftsmanship,omitempty"`
	Profile           string  `json:"profile,omitempty"`
	PickupAddress     string  `json:"pickupAddress,omitempty"`
	ContactEmail      string  `json:"contactEmail,omitempty"`
	ContactPhone      string  `json:"contactPhone,omitempty"`
	MinimumOrderValue float64 `json:"minimumOrderValue,omitempty"`
}

// ToCreateShopInput converts the onboarding payload into an application input.
func ToCreateShopInput(req CreateShopRequest) types.CreateShopInput {
	return types.CreateShopInput{
		Name:              req.Name,
		SellerType:        req.SellerType,
		Craftsmanship:     req.Craftsmanship,
		Profile:           req.Profile,
		PickupAddress:     req.PickupAddress,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		MinimumOrderValue: req.MinimumOrderValue,
	}
}

// FromDomainShop converts a domain shop to the transport representation.
func FromDomainShop(shop *domain.Shop) Shop {
	if shop == nil {
		return Shop{}
	}
	return Shop{
		ID:                shop.ID,
		Name:              shop.Name,
		SellerType:        string(shop.SellerType),
		Craftsmanship:     string(shop.Craftsmanship),
		Profile:           shop.Profile,
		PickupAddress:     shop.PickupAddress,
		ContactEmail:      shop.ContactEmail,
		ContactPhone:      shop.ContactPhone,
		MinimumOrderValue: shop.MinimumOrderValue,
		CreatedAt:         shop.CreatedAt,
	}
}

// FromDomainShops maps a slice of shops.
func FromDomainShops(shops []*domain.Shop) []Shop {
	out := make([]Shop, 0, len(shops))
	for _, shop := range shops {
		out = append(out, FromDomainShop(shop))
	}
	return out
}
