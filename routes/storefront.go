package routes

import (
	"github.com/gin-gonic/gin"

	bookingcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/booking"
	cartcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/cart"
	categorycontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/category"
	checkoutcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/checkout"
	productcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/product"
)

// SetupStorefrontRoutes registers the public shopper endpoints.
func SetupStorefrontRoutes(r *gin.Engine, deps *Deps) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(deps.Products))
		products.GET("/featured", productcontroller.GetFeaturedProducts(deps.Products))
		products.GET("/filters", productcontroller.GetFilterMetadata(deps.Products))
		products.GET("/:id", productcontroller.GetProduct(deps.Products))
		products.GET("/:id/similar", productcontroller.GetSimilarProducts(deps.Products))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categorycontroller.GetCategories(deps.Categories))
		categories.GET("/:id/subcategories", categorycontroller.GetSubcategories(deps.Categories))
	}

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartcontroller.GetCart(deps.CartPersister))
		cartGroup.POST("/items", cartcontroller.AddItem(deps.CartPersister, deps.Products))
		cartGroup.PUT("/items/:product_id", cartcontroller.UpdateItem(deps.CartPersister))
		cartGroup.DELETE("/items/:product_id", cartcontroller.DeleteItem(deps.CartPersister))
		cartGroup.DELETE("", cartcontroller.ClearCart(deps.CartPersister))
	}

	r.POST("/checkout", checkoutcontroller.Checkout(deps.CartPersister, deps.WhatsappPhone))
	r.POST("/bookings", bookingcontroller.CreateBooking(deps.Bookings, deps.BookingHub))
}
