package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

type SortOption string

const (
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
)

// Name sorts compare the French name; accents must order the French way.
var frCollator = collate.New(language.French)

// SortProducts returns a new slice ordered by the given option. The input is
// never reordered. Price sorts compare the regular price, not the promotion
// price. Unknown options return the input order unchanged.
func SortProducts(products []models.Product, option SortOption) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch option {
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return frCollator.CompareString(sorted[i].NameFr, sorted[j].NameFr) < 0
		})
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return frCollator.CompareString(sorted[i].NameFr, sorted[j].NameFr) > 0
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DisplayOrder > sorted[j].DisplayOrder
		})
	}

	return sorted
}
