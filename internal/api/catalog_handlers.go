package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
	"github.com/india-resources/directory-api/internal/service"
)

// ItemRequest represents the item creation and submission payload. URL items
// require a url, contact items require a number.
type ItemRequest struct {
	Kind           string `json:"kind" binding:"required,oneof=url contact"`
	Name           string `json:"name" binding:"required,max=255"`
	URL            string `json:"url" binding:"omitempty,url"`
	Number         string `json:"number" binding:"omitempty,max=32"`
	Category       string `json:"category" binding:"required,max=100"`
	State          string `json:"state" binding:"required"`
	Description    string `json:"description" binding:"omitempty,max=1024"`
	Icon           string `json:"icon" binding:"omitempty,max=50"`
	ImageURL       string `json:"image_url" binding:"omitempty,max=768"`
	SeoTitle       string `json:"seo_title" binding:"omitempty,max=255"`
	SeoDescription string `json:"seo_description" binding:"omitempty,max=512"`
	SeoKeywords    string `json:"seo_keywords" binding:"omitempty,max=512"`
}

// fields validates the kind-specific constraints and converts the request
// into stored item fields.
func (r *ItemRequest) fields() (db.ItemFields, error) {
	kind := db.ItemKind(r.Kind)
	switch kind {
	case db.KindURL:
		if strings.TrimSpace(r.URL) == "" {
			return db.ItemFields{}, fmt.Errorf("url is required for url items")
		}
	case db.KindContact:
		if strings.TrimSpace(r.Number) == "" {
			return db.ItemFields{}, fmt.Errorf("number is required for contact items")
		}
	}
	if !service.IsValidState(r.State) {
		return db.ItemFields{}, fmt.Errorf("unknown state %q", r.State)
	}

	return db.ItemFields{
		Kind:           kind,
		Name:           strings.TrimSpace(r.Name),
		URL:            strings.TrimSpace(r.URL),
		Number:         strings.TrimSpace(r.Number),
		Category:       r.Category,
		State:          r.State,
		Description:    r.Description,
		Icon:           r.Icon,
		ImageURL:       r.ImageURL,
		SeoTitle:       r.SeoTitle,
		SeoDescription: r.SeoDescription,
		SeoKeywords:    r.SeoKeywords,
	}, nil
}

// ItemPatchRequest represents a partial item update. Absent fields are left
// untouched.
type ItemPatchRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	URL            *string `json:"url" binding:"omitempty,max=768"`
	Number         *string `json:"number" binding:"omitempty,max=32"`
	Category       *string `json:"category" binding:"omitempty,max=100"`
	State          *string `json:"state"`
	Description    *string `json:"description" binding:"omitempty,max=1024"`
	Icon           *string `json:"icon" binding:"omitempty,max=50"`
	ImageURL       *string `json:"image_url" binding:"omitempty,max=768"`
	SeoTitle       *string `json:"seo_title" binding:"omitempty,max=255"`
	SeoDescription *string `json:"seo_description" binding:"omitempty,max=512"`
	SeoKeywords    *string `json:"seo_keywords" binding:"omitempty,max=512"`
}

// PaginatedResponse represents a paginated list response.
type PaginatedResponse struct {
	Data  interface{} `json:"data"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Total int64       `json:"total"`
	Pages int         `json:"pages"`
}

// ListItemsHandler handles public catalog listing with search and filters.
func ListItemsHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := db.ItemKind(c.Query("kind"))
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be \"url\" or \"contact\""})
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
		if err != nil || size < 1 || size > 100 {
			size = 20
		}

		opts := service.ListOptions{
			Kind:     kind,
			Query:    strings.TrimSpace(c.Query("q")),
			Category: strings.TrimSpace(c.Query("category")),
			State:    strings.TrimSpace(c.Query("state")),
			Page:     page,
			Size:     size,
		}

		items, total, err := service.ListItems(dbConn, opts)
		if err != nil {
			log.Error().Err(err).Msg("Failed to list items")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		pages := int((total + int64(size) - 1) / int64(size))
		c.JSON(http.StatusOK, PaginatedResponse{
			Data:  items,
			Page:  page,
			Size:  size,
			Total: total,
			Pages: pages,
		})
	}
}

// GetItemHandler handles retrieving a single published item.
func GetItemHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		item, err := service.GetItemByID(dbConn, id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			log.Error().Err(err).Uint("id", id).Msg("Failed to fetch item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// CreateItemHandler handles direct (admin) item publication.
func CreateItemHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid item format",
				"details": err.Error(),
			})
			return
		}

		fields, err := req.fields()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := service.CreateItem(dbConn, fields)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
			return
		}

		log.Info().Uint("id", item.ID).Str("kind", string(item.Kind)).Str("name", item.Name).Msg("Created item")
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateItemHandler handles partial item updates.
func UpdateItemHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req ItemPatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid item format",
				"details": err.Error(),
			})
			return
		}

		if req.State != nil && !service.IsValidState(*req.State) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown state %q", *req.State)})
			return
		}

		patch := service.ItemPatch{
			Name:           req.Name,
			URL:            req.URL,
			Number:         req.Number,
			Category:       req.Category,
			State:          req.State,
			Description:    req.Description,
			Icon:           req.Icon,
			ImageURL:       req.ImageURL,
			SeoTitle:       req.SeoTitle,
			SeoDescription: req.SeoDescription,
			SeoKeywords:    req.SeoKeywords,
		}

		item, err := service.UpdateItem(dbConn, id, patch)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			log.Error().Err(err).Uint("id", id).Msg("Failed to update item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DeleteItemHandler handles item removal.
func DeleteItemHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := service.DeleteItem(dbConn, id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			log.Error().Err(err).Uint("id", id).Msg("Failed to delete item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.Info().Uint("id", id).Msg("Deleted item")
		c.Status(http.StatusNoContent)
	}
}

// parseID reads the :id path parameter, answering 400 on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
