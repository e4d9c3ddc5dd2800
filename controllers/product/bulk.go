package productcontroller

import (
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

type BulkDeleteInput struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type BulkDeleteResult struct {
	Deleted   int      `json:"deleted"`
	FailedIDs []string `json:"failedIds"`
}

// BulkDeleteProducts deletes the selected products as an unordered parallel
// batch. Best effort: a failed deletion does not roll back the others; the
// response lists the IDs that failed so the panel can retry them.
func BulkDeleteProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BulkDeleteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			result BulkDeleteResult
		)
		for _, id := range input.IDs {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				err := products.Delete(ctx, id)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Warn().Err(err).Str("product", id).Msg("bulk delete: item failed")
					result.FailedIDs = append(result.FailedIDs, id)
					return
				}
				result.Deleted++
			}(id)
		}
		wg.Wait()

		sort.Strings(result.FailedIDs)

		status := http.StatusOK
		if len(result.FailedIDs) > 0 {
			status = http.StatusMultiStatus
		}
		c.JSON(status, result)
	}
}
