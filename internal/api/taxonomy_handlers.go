package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
	"github.com/india-resources/directory-api/internal/service"
)

// CategoryRequest represents a custom category add or remove payload.
type CategoryRequest struct {
	Kind string `json:"kind" binding:"required,oneof=url contact"`
	Name string `json:"name" binding:"required,max=100"`
}

// ListCategoriesHandler returns the category lists for a kind: the fixed
// defaults, the admin-added customs, and the combined ordered list.
func ListCategoriesHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := db.ItemKind(c.Query("kind"))
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be \"url\" or \"contact\""})
			return
		}

		custom, err := service.CustomCategories(dbConn, kind)
		if err != nil {
			log.Error().Err(err).Msg("Failed to list categories")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		defaults := service.DefaultCategories(kind)
		all := make([]string, 0, len(defaults)+len(custom))
		all = append(all, defaults...)
		customNames := make([]string, 0, len(custom))
		for _, cat := range custom {
			customNames = append(customNames, cat.Name)
			all = append(all, cat.Name)
		}

		c.JSON(http.StatusOK, gin.H{
			"defaults": defaults,
			"custom":   customNames,
			"all":      all,
		})
	}
}

// AddCategoryHandler appends a custom category.
func AddCategoryHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid category format",
				"details": err.Error(),
			})
			return
		}

		category, err := service.AddCustomCategory(dbConn, db.ItemKind(req.Kind), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyCategory):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category name cannot be empty"})
			case errors.Is(err, service.ErrDuplicateCategory):
				c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			default:
				log.Error().Err(err).Msg("Failed to add category")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		log.Info().Str("kind", req.Kind).Str("name", category.Name).Msg("Added custom category")
		c.JSON(http.StatusCreated, category)
	}
}

// RemoveCategoryHandler deletes a custom category. Default categories are
// immutable and cannot be removed.
func RemoveCategoryHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid category format",
				"details": err.Error(),
			})
			return
		}

		err := service.RemoveCustomCategory(dbConn, db.ItemKind(req.Kind), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrDefaultCategory):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Default categories cannot be removed"})
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			default:
				log.Error().Err(err).Msg("Failed to remove category")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		log.Info().Str("kind", req.Kind).Str("name", req.Name).Msg("Removed custom category")
		c.Status(http.StatusNoContent)
	}
}
