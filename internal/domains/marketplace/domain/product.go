package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotHomemade           = errors.New("products must be marked as homemade")
	ErrBannedCompany         = errors.New("company involvement is not allowed")
	ErrNegativeInventory     = errors.New("inventory must be greater or equal to zero")
	ErrNegativePrice         = errors.New("price must be greater or equal to zero")
	ErrEmptyProductName      = errors.New("product name is required")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// InsufficientInventoryError reports an order item asking for more units
// than the product has in stock. It unwraps to ErrInsufficientInventory.
type InsufficientInventoryError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough inventory for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error { return ErrInsufficientInventory }

// Product is a homemade item listed under a shop. Inventory only moves
// down, through order placement; there is no restock operation.
type Product struct {
	ID                     string
	ShopID                 string
	Name                   string
	Description            string
	Price                  float64
	Inventory              int
	HomemadeTag            bool
	SafetyNotes            string
	BannedCompanyMentioned bool
	CreatedAt              time.Time
}

// NewProduct validates the listing policy and builds a Product.
func NewProduct(id, shopID, name string, price float64, inventory int, homemadeTag, bannedCompanyMentioned bool, createdAt time.Time) (*Product, error) {
	p := &Product{
		ID:                     id,
		ShopID:                 shopID,
		Name:                   name,
		Price:                  price,
		Inventory:              inventory,
		HomemadeTag:            homemadeTag,
		BannedCompanyMentioned: bannedCompanyMentioned,
		CreatedAt:              createdAt,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces the listing invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if !p.HomemadeTag {
		return ErrNotHomemade
	}
	if p.BannedCompanyMentioned {
		return ErrBannedCompany
	}
	if p.Inventory < 0 {
		return ErrNegativeInventory
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ProductUpdate carries a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name                   *string
	Description            *string
	Price                  *float64
	Inventory              *int
	HomemadeTag            *bool
	SafetyNotes            *string
	BannedCompanyMentioned *bool
}

// ApplyUpdate merges the provided fields over the product. The homemade tag
// can never be cleared and a banned-company mention can never be set.
func (p *Product) ApplyUpdate(u ProductUpdate) error {
	if u.HomemadeTag != nil && !*u.HomemadeTag {
		return ErrNotHomemade
	}
	if u.BannedCompanyMentioned != nil && *u.BannedCompanyMentioned {
		return ErrBannedCompany
	}
	if u.Name != nil {
		if strings.TrimSpace(*u.Name) == "" {
			return ErrEmptyProductName
		}
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		if *u.Price < 0 {
			return ErrNegativePrice
		}
		p.Price = *u.Price
	}
	if u.Inventory != nil {
		if *u.Inventory < 0 {
			return ErrNegativeInventory
		}
		p.Inventory = *u.Inventory
	}
	if u.SafetyNotes != nil {
		p.SafetyNotes = *u.SafetyNotes
	}
	return nil
}

// Reserve checks availability for the requested quantity and decrements the
// inventory. Callers must hold the ledger's write boundary.
func (p *Product) Reserve(quantity int) error {
	if quantity > p.Inventory {
		return &InsufficientInventoryError{
			ProductName: p.Name,
			Requested:   quantity,
			Available:   p.Inventory,
		}
	}
	p.Inventory -= quantity
	return nil
}
