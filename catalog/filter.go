// Package catalog is the pure filter/sort layer over already-fetched product
// documents. Nothing here touches the database or mutates its inputs.
package catalog

import (
	"strings"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

// FilterCriteria is the storefront's filter sidebar state. Zero values mean
// "no constraint"; price bounds are pointers so 0 stays a usable bound.
type FilterCriteria struct {
	CategoryID    string
	SubcategoryID string
	MinPrice      *float64
	MaxPrice      *float64
	InStock       bool
	Search        string
}

// Match applies the criteria to one product.
//
// A non-empty search query bypasses every other criterion: the result is the
// substring match alone, against the French name and description. The
// storefront has always behaved this way and the admin panel relies on it.
func (c FilterCriteria) Match(p *models.Product) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		return strings.Contains(strings.ToLower(p.NameFr), q) ||
			strings.Contains(strings.ToLower(p.DescriptionFr), q)
	}
	if c.CategoryID != "" && p.CategoryID != c.CategoryID {
		return false
	}
	if c.SubcategoryID != "" && p.SubcategoryID != c.SubcategoryID {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.InStock && p.StockQuantity <= 0 {
		return false
	}
	return true
}

// FilterProducts returns the products matching the criteria, in input order.
func FilterProducts(products []models.Product, criteria FilterCriteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if criteria.Match(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}
	return filtered
}

// SimilarProducts picks available products from the same category, excluding
// the product itself, capped at limit.
func SimilarProducts(products []models.Product, self *models.Product, limit int) []models.Product {
	similar := make([]models.Product, 0, limit)
	for i := range products {
		p := &products[i]
		if p.ID == self.ID || p.CategoryID != self.CategoryID || !p.IsAvailable {
			continue
		}
		similar = append(similar, *p)
		if len(similar) == limit {
			break
		}
	}
	return similar
}

// FeaturedProducts picks available featured products, capped at limit.
func FeaturedProducts(products []models.Product, limit int) []models.Product {
	featured := make([]models.Product, 0, limit)
	for i := range products {
		p := &products[i]
		if !p.IsFeatured || !p.IsAvailable {
			continue
		}
		featured = append(featured, *p)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

// FilterMetadata feeds the storefront's filter sidebar.
type FilterMetadata struct {
	InStock    int     `json:"inStock"`
	OutOfStock int     `json:"outOfStock"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

// BuildFilterMetadata computes availability counts and the price range over
// the full catalog.
func BuildFilterMetadata(products []models.Product) FilterMetadata {
	var meta FilterMetadata
	for i := range products {
		p := &products[i]
		if p.StockQuantity > 0 {
			meta.InStock++
		} else {
			meta.OutOfStock++
		}
		if i == 0 || p.Price < meta.MinPrice {
			meta.MinPrice = p.Price
		}
		if p.Price > meta.MaxPrice {
			meta.MaxPrice = p.Price
		}
	}
	return meta
}
