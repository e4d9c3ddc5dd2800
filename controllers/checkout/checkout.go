package checkoutcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/cart"
	"github.com/ThaRealJozef/DimaVelo-sub000/checkout"
	cartcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/cart"
)

type CheckoutInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Notes   string `json:"notes"`
}

type CheckoutResponse struct {
	Message     string  `json:"message"`
	WhatsAppURL string  `json:"whatsappUrl"`
	Total       float64 `json:"total"`
}

// Checkout renders the session's cart into the WhatsApp order message and the
// deep link the storefront opens. The cart stays as-is: the shopper may come
// back without having sent the message.
func Checkout(persister cart.Persister, shopPhone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store, err := cart.Open(c.Request.Context(), persister, cartcontroller.Session(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if store.ItemsCount() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := &checkout.Order{
			CustomerName:  input.Name,
			CustomerEmail: input.Email,
			CustomerPhone: input.Phone,
			Address:       input.Address,
			Notes:         input.Notes,
			Items:         store.Items(),
		}
		message := checkout.BuildMessage(order)

		c.JSON(http.StatusOK, CheckoutResponse{
			Message:     message,
			WhatsAppURL: checkout.WhatsAppURL(shopPhone, message),
			Total:       order.Total(),
		})
	}
}
