package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/catalog"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

const defaultLimit = 8

// GetProduct returns one product by ID.
func GetProduct(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.GetByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetFeaturedProducts returns available featured products for the home page.
func GetFeaturedProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, catalog.FeaturedProducts(all, limitParam(c)))
	}
}

// GetSimilarProducts returns available products from the same category.
func GetSimilarProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		self, err := products.GetByID(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		all, err := products.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, catalog.SimilarProducts(all, self, limitParam(c)))
	}
}

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	return limit
}
