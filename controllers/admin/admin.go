package admincontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/ThaRealJozef/DimaVelo-sub000/auth"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks admin credentials and returns a session token. Wrong email
// and wrong password answer the same way; the panel shows one fixed message
// for both.
func Login(admins repository.AdminRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
			return
		}

		admin, err := admins.GetByEmail(c.Request.Context(), input.Email)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("admin lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Une erreur est survenue, veuillez réessayer"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}

		token, err := auth.IssueToken(jwtSecret, admin.ID, admin.Email)
		if err != nil {
			log.Error().Err(err).Msg("token issue failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Une erreur est survenue, veuillez réessayer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "email": admin.Email})
	}
}

// Logout ends the panel session. Tokens are stateless, so this only confirms;
// the panel drops its copy.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
