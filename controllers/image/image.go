package imagecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ThaRealJozef/DimaVelo-sub000/imghost"
)

// UploadImage forwards a panel upload to the image host and returns the
// hosted URL. The caller writes the URL into a product afterwards; if that
// write fails the image stays on the host (no rollback).
func UploadImage(client *imghost.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}
		defer file.Close()

		url, err := client.Upload(c.Request.Context(), header.Filename, file)
		if err != nil {
			log.Error().Err(err).Str("file", header.Filename).Msg("image upload failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
