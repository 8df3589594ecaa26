package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/india-resources/directory-api/internal/db"
)

// setupTestDB opens a throwaway sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(conn))
	return conn
}

func urlFields(name, address string) db.ItemFields {
	return db.ItemFields{
		Kind:        db.KindURL,
		Name:        name,
		URL:         address,
		Category:    "Public Services",
		State:       "All India",
		Description: "d",
		Icon:        "Globe",
	}
}

func contactFields(name, number string) db.ItemFields {
	return db.ItemFields{
		Kind:        db.KindContact,
		Name:        name,
		Number:      number,
		Category:    "Emergency",
		State:       "All India",
		Description: "d",
		Icon:        "Phone",
	}
}
