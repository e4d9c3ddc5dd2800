package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// DeleteProduct removes one catalog entry.
func DeleteProduct(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := products.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
