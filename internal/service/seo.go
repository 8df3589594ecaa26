package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
)

// SeoPatch carries the fields of a partial SEO settings update. Nil fields
// are left untouched; all values are free-form strings.
type SeoPatch struct {
	Title         *string
	Description   *string
	Keywords      *string
	Author        *string
	OGImage       *string
	TwitterHandle *string
	CanonicalURL  *string
}

// GetSeoSettings returns the site metadata record. The row is created during
// migration, so it always exists.
func GetSeoSettings(dbConn *gorm.DB) (*db.SeoSettings, error) {
	var settings db.SeoSettings
	if err := dbConn.First(&settings, 1).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSeoSettings shallow-merges the patch onto the current settings and
// refreshes the last-updated timestamp, even when the patch is empty.
func UpdateSeoSettings(dbConn *gorm.DB, patch SeoPatch) (*db.SeoSettings, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	set("title", patch.Title)
	set("description", patch.Description)
	set("keywords", patch.Keywords)
	set("author", patch.Author)
	set("og_image", patch.OGImage)
	set("twitter_handle", patch.TwitterHandle)
	set("canonical_url", patch.CanonicalURL)

	if err := dbConn.Model(&db.SeoSettings{}).Where("id = ?", 1).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetSeoSettings(dbConn)
}
