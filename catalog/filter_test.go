package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

func f64(v float64) *float64 { return &v }

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", CategoryID: "velos", NameFr: "Vélo de route", DescriptionFr: "Cadre carbone", Price: 100, StockQuantity: 3, IsAvailable: true, IsFeatured: true, DisplayOrder: 1},
		{ID: "p2", CategoryID: "velos", NameFr: "VTT enfant", DescriptionFr: "Roues 20 pouces", Price: 200, StockQuantity: 0, IsAvailable: false, DisplayOrder: 2},
		{ID: "p3", CategoryID: "accessoires", NameFr: "Casque urbain", DescriptionFr: "Taille M", Price: 300, StockQuantity: 8, IsAvailable: true, IsFeatured: true, DisplayOrder: 3},
	}
}

func TestFilterByPriceBounds(t *testing.T) {
	got := FilterProducts(testProducts(), FilterCriteria{MinPrice: f64(150), MaxPrice: f64(250)})

	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	got := FilterProducts(testProducts(), FilterCriteria{MinPrice: f64(100), MaxPrice: f64(300)})
	assert.Len(t, got, 3)
}

func TestFilterByCategory(t *testing.T) {
	got := FilterProducts(testProducts(), FilterCriteria{CategoryID: "velos"})

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
}

func TestFilterInStock(t *testing.T) {
	got := FilterProducts(testProducts(), FilterCriteria{InStock: true})

	require.Len(t, got, 2)
	for _, p := range got {
		assert.Greater(t, p.StockQuantity, 0)
	}
}

func TestFilterBySearch(t *testing.T) {
	got := FilterProducts(testProducts(), FilterCriteria{Search: "vélo"})

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// Description matches too.
	got = FilterProducts(testProducts(), FilterCriteria{Search: "roues"})
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

// A search query is evaluated as the sole predicate: category, price and
// stock criteria are ignored while it is set. Pinned on purpose.
func TestSearchBypassesOtherCriteria(t *testing.T) {
	criteria := FilterCriteria{
		Search:     "vtt",
		CategoryID: "accessoires",
		MinPrice:   f64(1000),
		InStock:    true,
	}

	got := FilterProducts(testProducts(), criteria)

	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestNoCriteriaKeepsEverything(t *testing.T) {
	assert.Len(t, FilterProducts(testProducts(), FilterCriteria{}), 3)
}

func TestSimilarProducts(t *testing.T) {
	products := testProducts()
	got := SimilarProducts(products, &products[0], 4)

	// p2 shares the category but is unavailable.
	assert.Empty(t, got)

	products[1].IsAvailable = true
	got = SimilarProducts(products, &products[0], 4)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestSimilarProductsHonorsLimit(t *testing.T) {
	products := []models.Product{
		{ID: "a", CategoryID: "velos", IsAvailable: true},
		{ID: "b", CategoryID: "velos", IsAvailable: true},
		{ID: "c", CategoryID: "velos", IsAvailable: true},
		{ID: "d", CategoryID: "velos", IsAvailable: true},
	}

	got := SimilarProducts(products, &products[0], 2)
	assert.Len(t, got, 2)
}

func TestFeaturedProducts(t *testing.T) {
	got := FeaturedProducts(testProducts(), 8)

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)

	assert.Len(t, FeaturedProducts(testProducts(), 1), 1)
}

func TestBuildFilterMetadata(t *testing.T) {
	meta := BuildFilterMetadata(testProducts())

	assert.Equal(t, 2, meta.InStock)
	assert.Equal(t, 1, meta.OutOfStock)
	assert.Equal(t, 100.0, meta.MinPrice)
	assert.Equal(t, 300.0, meta.MaxPrice)
}
