package routes

import (
	"github.com/gin-gonic/gin"

	admincontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/admin"
	bookingcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/booking"
	categorycontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/category"
	imagecontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/image"
	productcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/product"
	"github.com/ThaRealJozef/DimaVelo-sub000/middleware"
)

// SetupAdminRoutes registers the back-office endpoints. Everything but login
// sits behind the JWT guard.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	r.POST("/admin/login", admincontroller.Login(deps.Admins, deps.JWTSecret))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(deps.JWTSecret))
	{
		adminGroup.POST("/logout", admincontroller.Logout())

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.Products))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Products))
			productAdmin.POST("/bulk-delete", productcontroller.BulkDeleteProducts(deps.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Products))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categorycontroller.CreateCategory(deps.Categories))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(deps.Categories))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(deps.Categories))
		}

		// ─────────── Bookings ───────────
		bookingAdmin := adminGroup.Group("/bookings")
		{
			bookingAdmin.GET("", bookingcontroller.GetBookings(deps.Bookings))
			bookingAdmin.PUT("/:id/status", bookingcontroller.UpdateBookingStatus(deps.Bookings))
			bookingAdmin.DELETE("/:id", bookingcontroller.DeleteBooking(deps.Bookings))
		}

		adminGroup.POST("/images", imagecontroller.UploadImage(deps.Images))
		adminGroup.GET("/ws/bookings", deps.BookingHub.Feed())
	}
}
