package mapper

import (
	"time"

	types "github.com/delibro/delibro/internal/domains/marketplace/application/types"
	"github.com/delibro/delibro/internal/domains/marketplace/domain"
)

// Product is the transport-layer shape of a listing.
type Product struct {
	ID                     string    `json:"id"`
	ShopID                 string    `json:"shopId"`
	Name                   string    `json:"name"`
	Description            string    `json:"description,omitempty"`
	Price                  float64   `json:"price"`
	Inventory              int       `json:"inventory"`
	HomemadeTag            bool      `json:"homemadeTag"`
	SafetyNotes            string    `json:"safetyNotes,omitempty"`
	BannedCompanyMentioned bool      `json:"bannedCompanyMentioned"`
	CreatedAt              time.Time `json:"createdAt"`
}

// CreateProductRequest is the listing payload.
type CreateProductRequest struct {
	ShopID                 string  `json:"shopId"`
	Name                   string  `json:"name"`
	Description            string  `json:"description,omitempty"`
	Price                  float64 `json:"price"`
	Inventory              int     `json:"inventory"`
	HomemadeTag            bool    `json:"homemadeTag"`
	SafetyNotes            string  `json:"safetyNotes,omitempty"`
	BannedCompanyMentioned bool    `json:"bannedCompanyMentioned,omitempty"`
}

// UpdateProductRequest is a partial update; absent fields stay unchanged.
type UpdateProductRequest struct {
	Name                   *string  `json:"name,omitempty"`
	Description            *string  `json:"description,omitempty"`
	Price                  *float64 `json:"price,omitempty"`
	Inventory              *int     `json:"inventory,omitempty"`
	HomemadeTag            *bool    `json:"homemadeTag,omitempty"`
	SafetyNotes            *string  `json:"safetyNotes,omitempty"`
	BannedCompanyMentioned *bool    `json:"bannedCompanyMentioned,omitempty"`
}

// ToCreateProductInput converts a listing payload into an application input.
func ToCreateProductInput(req CreateProductRequest) types.CreateProductInput {
	return types.CreateProductInput{
		ShopID:                 req.ShopID,
		Name:                   req.Name,
		Description:            req.Description,
		Price:                  req.Price,
		Inventory:              req.Inventory,
		HomemadeTag:            req.HomemadeTag,
		SafetyNotes:            req.SafetyNotes,
		BannedCompanyMentioned: req.BannedCompanyMentioned,
	}
}

// ToUpdateProductInput converts a partial update payload.
func ToUpdateProductInput(id string, req UpdateProductRequest) types.UpdateProductInput {
	return types.UpdateProductInput{
		ID: id,
		Update: domain.ProductUpdate{
			Name:                   req.Name,
			Description:            req.Description,
			Price:                  req.Price,
			Inventory:              req.Inventory,
			HomemadeTag:            req.HomemadeTag,
			SafetyNotes:            req.SafetyNotes,
			BannedCompanyMentioned: req.BannedCompanyMentioned,
		},
	}
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *domain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:                     product.ID,
		ShopID:                 product.ShopID,
		Name:                   product.Name,
		Description:            product.Description,
		Price:                  product.Price,
		Inventory:              product.Inventory,
		HomemadeTag:            product.HomemadeTag,
		SafetyNotes:            product.SafetyNotes,
		BannedCompanyMentioned: product.BannedCompanyMentioned,
		CreatedAt:              product.CreatedAt,
	}
}

// FromDomainProducts maps a slice of products.
func FromDomainProducts(products []*domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomainProduct(product))
	}
	return out
}
