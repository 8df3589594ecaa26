package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/service"
)

// SeoRequest represents a partial SEO settings update. Absent fields are left
// untouched; values are free-form strings.
type SeoRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Keywords      *string `json:"keywords"`
	Author        *string `json:"author"`
	OGImage       *string `json:"og_image"`
	TwitterHandle *string `json:"twitter_handle"`
	CanonicalURL  *string `json:"canonical_url"`
}

// GetSeoHandler returns the site metadata record.
func GetSeoHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := service.GetSeoSettings(dbConn)
		if err != nil {
			log.Error().Err(err).Msg("Failed to fetch SEO settings")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

// UpdateSeoHandler merges the provided fields onto the site metadata record
// and refreshes its last-updated timestamp.
func UpdateSeoHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SeoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request format",
				"details": err.Error(),
			})
			return
		}

		settings, err := service.UpdateSeoSettings(dbConn, service.SeoPatch{
			Title:         req.Title,
			Description:   req.Description,
			Keywords:      req.Keywords,
			Author:        req.Author,
			OGImage:       req.OGImage,
			TwitterHandle: req.TwitterHandle,
			CanonicalURL:  req.CanonicalURL,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to update SEO settings")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.Info().Msg("Updated SEO settings")
		c.JSON(http.StatusOK, settings)
	}
}
