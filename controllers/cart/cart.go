package cartcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ThaRealJozef/DimaVelo-sub000/cart"
	"github.com/ThaRealJozef/DimaVelo-sub000/i18n"
	"github.com/ThaRealJozef/DimaVelo-sub000/models"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// SessionHeader carries the shopper's cart session ID. The first response
// mints one; the storefront echoes it on every later call.
const SessionHeader = "X-Cart-Session"

// Session returns the request's cart session ID, minting one if missing, and
// always reflects it in the response header.
func Session(c *gin.Context) string {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)
	return sessionID
}

func openCart(c *gin.Context, persister cart.Persister) (*cart.Store, bool) {
	store, err := cart.Open(c.Request.Context(), persister, Session(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return store, true
}

type cartView struct {
	Items      []models.CartItem `json:"items"`
	Total      float64           `json:"total"`
	ItemsCount int               `json:"itemsCount"`
}

func view(store *cart.Store) cartView {
	return cartView{Items: store.Items(), Total: store.Total(), ItemsCount: store.ItemsCount()}
}

// GetCart returns the session's cart with derived totals.
func GetCart(persister cart.Persister) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := openCart(c, persister)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, view(store))
	}
}

type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// AddItem puts a product in the cart. The line snapshots the product's
// localized name and pricing at add time; the persisted cart is a copy, not a
// reference into the catalog.
func AddItem(persister cart.Persister, products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.GetByID(c.Request.Context(), input.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		store, ok := openCart(c, persister)
		if !ok {
			return
		}

		lang := i18n.ParseLanguage(c.Query("lang"))
		item := models.CartItem{
			ProductID:  product.ID,
			CategoryID: product.CategoryID,
			Name:       i18n.ProductName(product, lang),
			Price:      product.Price,
		}
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}
		if product.OnPromotion() {
			item.OriginalPrice = product.OriginalPrice
			item.DiscountPrice = product.DiscountPrice
		}

		if err := store.AddToCart(c.Request.Context(), item, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, view(store))
	}
}

type UpdateItemInput struct {
	// Pointer so 0 binds: zero and negative quantities remove the line.
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateItem sets a line's quantity exactly.
func UpdateItem(persister cart.Persister) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store, ok := openCart(c, persister)
		if !ok {
			return
		}

		if err := store.UpdateQuantity(c.Request.Context(), c.Param("product_id"), *input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, view(store))
	}
}

// DeleteItem removes a line.
func DeleteItem(persister cart.Persister) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := openCart(c, persister)
		if !ok {
			return
		}

		if err := store.RemoveFromCart(c.Request.Context(), c.Param("product_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, view(store))
	}
}

// ClearCart empties the session's cart.
func ClearCart(persister cart.Persister) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := openCart(c, persister)
		if !ok {
			return
		}

		if err := store.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
