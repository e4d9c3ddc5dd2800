package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// UpdateProduct replaces a catalog entry.
func UpdateProduct(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		existing, err := products.GetByID(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		product := input.toModel()
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
		product.NormalizeAvailability()

		if err := products.Update(ctx, &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
