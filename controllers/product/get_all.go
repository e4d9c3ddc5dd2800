package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/catalog"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// GetProducts lists the catalog with the storefront's filter and sort params.
// Filtering and sorting run in-process over the full list; the catalog is
// small and the document store is queried once.
func GetProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := catalog.FilterCriteria{
			CategoryID:    c.Query("category_id"),
			SubcategoryID: c.Query("subcategory_id"),
			Search:        c.Query("search"),
			InStock:       c.Query("in_stock") == "true",
		}

		if raw := c.Query("min_price"); raw != "" {
			mp, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			criteria.MinPrice = &mp
		}
		if raw := c.Query("max_price"); raw != "" {
			mp, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			criteria.MaxPrice = &mp
		}

		all, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := catalog.FilterProducts(all, criteria)
		sorted := catalog.SortProducts(filtered, catalog.SortOption(c.Query("sort")))

		c.JSON(http.StatusOK, sorted)
	}
}

// GetFilterMetadata feeds the storefront's filter sidebar.
func GetFilterMetadata(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, catalog.BuildFilterMetadata(all))
	}
}
