package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/cart"
	bookingcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/booking"
	"github.com/ThaRealJozef/DimaVelo-sub000/imghost"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

// Deps bundles everything the handlers need. Built once in main.
type Deps struct {
	Products      repository.ProductRepository
	Categories    repository.CategoryRepository
	Bookings      repository.BookingRepository
	Admins        repository.AdminRepository
	CartPersister cart.Persister
	Images        *imghost.Client
	BookingHub    *bookingcontroller.Hub
	JWTSecret     string
	WhatsappPhone string
}

// SetupRoutes is the single entry point wiring the storefront and admin
// route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupStorefrontRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
