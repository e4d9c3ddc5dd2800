package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

func TestSortPriceDescLeavesInputAlone(t *testing.T) {
	products := []models.Product{{Price: 50}, {Price: 10}, {Price: 30}}

	got := SortProducts(products, SortPriceDesc)

	require.Len(t, got, 3)
	assert.Equal(t, []float64{50, 30, 10}, prices(got))
	assert.Equal(t, []float64{50, 10, 30}, prices(products), "input must not be reordered")
}

func TestSortPriceAsc(t *testing.T) {
	got := SortProducts([]models.Product{{Price: 50}, {Price: 10}, {Price: 30}}, SortPriceAsc)
	assert.Equal(t, []float64{10, 30, 50}, prices(got))
}

func TestSortPriceIgnoresPromotion(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 100, OriginalPrice: 100, DiscountPrice: 10},
		{ID: "b", Price: 50},
	}

	got := SortProducts(products, SortPriceAsc)

	// "a" still sells for 10, but price sorts use the regular price.
	assert.Equal(t, "b", got[0].ID)
}

func TestSortNameAscIsAccentAware(t *testing.T) {
	products := []models.Product{
		{NameFr: "Éclairage avant"},
		{NameFr: "Antivol U"},
		{NameFr: "Chambre à air"},
	}

	got := SortProducts(products, SortNameAsc)

	assert.Equal(t, "Antivol U", got[0].NameFr)
	assert.Equal(t, "Chambre à air", got[1].NameFr)
	assert.Equal(t, "Éclairage avant", got[2].NameFr)
}

func TestSortNameDesc(t *testing.T) {
	products := []models.Product{{NameFr: "Antivol"}, {NameFr: "Casque"}}

	got := SortProducts(products, SortNameDesc)

	assert.Equal(t, "Casque", got[0].NameFr)
}

func TestSortNewestUsesDisplayOrder(t *testing.T) {
	products := []models.Product{
		{ID: "old", DisplayOrder: 1},
		{ID: "new", DisplayOrder: 9},
		{ID: "mid", DisplayOrder: 5},
	}

	got := SortProducts(products, SortNewest)

	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "old", got[2].ID)
}

func TestUnknownSortIsIdentity(t *testing.T) {
	products := []models.Product{{Price: 50}, {Price: 10}, {Price: 30}}

	got := SortProducts(products, SortOption("rating"))

	assert.Equal(t, prices(products), prices(got))
}

func prices(products []models.Product) []float64 {
	out := make([]float64, len(products))
	for i, p := range products {
		out[i] = p.Price
	}
	return out
}
