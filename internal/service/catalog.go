package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
)

// ListOptions controls catalog listing. Query is a substring match on name
// and description; Category and State are exact matches.
type ListOptions struct {
	Kind     db.ItemKind
	Query    string
	Category string
	State    string
	Page     int
	Size     int
}

// ItemPatch carries the fields of a partial item update. Nil fields are left
// untouched.
type ItemPatch struct {
	Name           *string
	URL            *string
	Number         *string
	Category       *string
	State          *string
	Description    *string
	Icon           *string
	ImageURL       *string
	SeoTitle       *string
	SeoDescription *string
	SeoKeywords    *string
}

func (p ItemPatch) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	set("name", p.Name)
	set("url", p.URL)
	set("number", p.Number)
	set("category", p.Category)
	set("state", p.State)
	set("description", p.Description)
	set("icon", p.Icon)
	set("image_url", p.ImageURL)
	set("seo_title", p.SeoTitle)
	set("seo_description", p.SeoDescription)
	set("seo_keywords", p.SeoKeywords)
	return updates
}

// CreateItem publishes a new catalog item with a fresh id.
func CreateItem(dbConn *gorm.DB, fields db.ItemFields) (*db.Item, error) {
	if !fields.Kind.Valid() {
		return nil, fmt.Errorf("unknown item kind %q", fields.Kind)
	}
	if fields.Name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	item := db.Item{ItemFields: fields}
	if err := dbConn.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemByID retrieves a published item by id.
func GetItemByID(dbConn *gorm.DB, id uint) (*db.Item, error) {
	var item db.Item
	err := dbConn.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListItems returns a page of published items in insertion order along with
// the total match count.
func ListItems(dbConn *gorm.DB, opts ListOptions) ([]db.Item, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Size < 1 || opts.Size > 100 {
		opts.Size = 20
	}

	query := dbConn.Model(&db.Item{}).Where("kind = ?", opts.Kind)
	if opts.Query != "" {
		pattern := "%" + opts.Query + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.State != "" {
		query = query.Where("state = ?", opts.State)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []db.Item
	offset := (opts.Page - 1) * opts.Size
	if err := query.Order("id asc").Limit(opts.Size).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateItem merges the patch onto an existing item. A missing id fails with
// ErrNotFound.
func UpdateItem(dbConn *gorm.DB, id uint, patch ItemPatch) (*db.Item, error) {
	var item db.Item
	if err := dbConn.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := patch.updates()
	if len(updates) == 0 {
		return &item, nil
	}
	if err := dbConn.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetItemByID(dbConn, id)
}

// DeleteItem removes a published item. A missing id fails with ErrNotFound.
func DeleteItem(dbConn *gorm.DB, id uint) error {
	result := dbConn.Delete(&db.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
