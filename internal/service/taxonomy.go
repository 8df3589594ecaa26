package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
)

// CustomCategories returns the admin-added categories for a kind in insertion order.
func CustomCategories(dbConn *gorm.DB, kind db.ItemKind) ([]db.CustomCategory, error) {
	var categories []db.CustomCategory
	err := dbConn.Where("kind = ?", kind).Order("id asc").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// AllCategories returns the full category list for a kind: defaults first in
// their fixed order, then custom categories in insertion order.
func AllCategories(dbConn *gorm.DB, kind db.ItemKind) ([]string, error) {
	all := DefaultCategories(kind)
	custom, err := CustomCategories(dbConn, kind)
	if err != nil {
		return nil, err
	}
	for _, c := range custom {
		all = append(all, c.Name)
	}
	return all, nil
}

// AddCustomCategory appends a new custom category for a kind. Blank names fail
// with ErrEmptyCategory; names already present among defaults or customs fail
// with ErrDuplicateCategory, leaving the list unchanged.
func AddCustomCategory(dbConn *gorm.DB, kind db.ItemKind, name string) (*db.CustomCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategory
	}
	if IsDefaultCategory(kind, name) {
		return nil, ErrDuplicateCategory
	}

	var existing db.CustomCategory
	err := dbConn.Where("kind = ? AND name = ?", kind, name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateCategory
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := db.CustomCategory{Kind: kind, Name: name}
	if err := dbConn.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// RemoveCustomCategory deletes a custom category. Default categories cannot be
// removed and fail with ErrDefaultCategory; an unknown name fails with
// ErrNotFound. Items keeping the removed category name are left untouched.
func RemoveCustomCategory(dbConn *gorm.DB, kind db.ItemKind, name string) error {
	name = strings.TrimSpace(name)
	if IsDefaultCategory(kind, name) {
		return ErrDefaultCategory
	}

	result := dbConn.Where("kind = ? AND name = ?", kind, name).Delete(&db.CustomCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
