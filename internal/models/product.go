package models

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
)

var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHome,
	CategorySports,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

type Product struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Quantity  int64      `json:"quantity"`
	Price     float64    `json:"price"`
	Category  Category   `json:"category"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NormalizedName is the form used for uniqueness checks only.
func (p *Product) NormalizedName() string {
	return NormalizeName(p.Name)
}

func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ProductDraft carries the unvalidated input fields for create and update.
type ProductDraft struct {
	Name     string  `json:"name" validate:"required,min=2,max=200"`
	Quantity int64   `json:"quantity" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"required,oneof=electronics clothing books home sports"`
}

type SortKey string

const (
	SortNone     SortKey = ""
	SortName     SortKey = "name"
	SortPrice    SortKey = "price"
	SortQuantity SortKey = "quantity"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortName, SortPrice, SortQuantity:
		return true
	}

	return false
}

// ListOptions narrows and orders the view without touching stored order.
type ListOptions struct {
	Category Category
	Sort     SortKey
	Search   string
}
