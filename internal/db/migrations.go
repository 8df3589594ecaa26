package db

import "gorm.io/gorm"

// DefaultSeoSettings are the initial values for the site metadata record.
var DefaultSeoSettings = SeoSettings{
	ID:            1,
	Title:         "India Resources Portal - Important URLs & Contacts",
	Description:   "Complete directory of India's most important government websites, emergency contacts, and essential services",
	Keywords:      "India, government websites, emergency contacts, digital india, government services, indian states, emergency numbers",
	Author:        "India Resources Portal",
	OGImage:       "https://ibb.co/67X3xfSV",
	TwitterHandle: "@dualitedev",
	CanonicalURL:  "https://alpha.dualite.dev",
}

// RunMigrations performs database migrations.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Item{}, &Submission{}, &CustomCategory{}, &SeoSettings{}); err != nil {
		return err
	}

	// The SEO settings record is a singleton; make sure it exists.
	return ensureSeoSettings(db)
}

func ensureSeoSettings(db *gorm.DB) error {
	defaults := DefaultSeoSettings
	return db.Where(SeoSettings{ID: 1}).FirstOrCreate(&defaults).Error
}
