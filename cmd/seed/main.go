package main

import (
	"errors"
	"flag"
	"log"

	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/config"
	"github.com/india-resources/directory-api/internal/db"
	"github.com/india-resources/directory-api/internal/service"
)

// SeedConfig holds seed configuration.
type SeedConfig struct {
	Username string
	Password string
	SkipDemo bool
	Force    bool
}

// NewSeedConfig creates a new seed configuration.
func NewSeedConfig() *SeedConfig {
	username := flag.String("username", "contributor1", "Demo contributor username")
	password := flag.String("password", "password", "Demo contributor password")
	skipDemo := flag.Bool("skip-demo", false, "Seed only the contributor account, no demo data")
	force := flag.Bool("force", false, "Reseed even when data already exists")

	flag.Parse()

	return &SeedConfig{
		Username: *username,
		Password: *password,
		SkipDemo: *skipDemo,
		Force:    *force,
	}
}

func main() {
	seedCfg := NewSeedConfig()

	if seedCfg.Username == "" {
		log.Fatal("Username cannot be empty")
	}
	if len(seedCfg.Password) < 6 {
		log.Fatal("Password must be at least 6 characters long")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Starting database seeding...")

	dbConn, err := db.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seedContributor(dbConn, cfg, seedCfg); err != nil {
		log.Fatalf("Failed to seed contributor: %v", err)
	}

	if !seedCfg.SkipDemo {
		if err := seedDemoData(dbConn, seedCfg); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	log.Println("Database seeding completed successfully")
}

func seedContributor(dbConn *gorm.DB, cfg *config.Config, seedCfg *SeedConfig) error {
	var existing db.User
	err := dbConn.Where("username = ?", seedCfg.Username).First(&existing).Error
	if err == nil {
		if !seedCfg.Force {
			log.Printf("Contributor '%s' already exists. Use -force to recreate.", seedCfg.Username)
			return nil
		}
		log.Printf("Recreating contributor '%s'...", seedCfg.Username)
		if err := dbConn.Delete(&existing).Error; err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user, err := service.RegisterUser(dbConn, seedCfg.Username, seedCfg.Password, cfg.AdminUsername)
	if err != nil {
		return err
	}

	log.Printf("Created contributor: %s (ID: %d)", user.Username, user.ID)
	return nil
}

func seedDemoData(dbConn *gorm.DB, seedCfg *SeedConfig) error {
	var count int64
	if err := dbConn.Model(&db.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 && !seedCfg.Force {
		log.Println("Items already present, skipping demo data. Use -force to reseed.")
		return nil
	}

	published := []db.ItemFields{
		{Kind: db.KindURL, Name: "Government of India", URL: "https://www.india.gov.in", Category: "Central Government", State: "All India", Description: "Official portal of Government of India", Icon: "Globe"},
		{Kind: db.KindURL, Name: "Digital India", URL: "https://digitalindia.gov.in", Category: "Digital Services", State: "All India", Description: "Digital India initiative portal", Icon: "Smartphone"},
		{Kind: db.KindContact, Name: "Police Emergency", Number: "100", Category: "Emergency", State: "All India", Description: "For immediate police assistance", Icon: "Shield"},
		{Kind: db.KindContact, Name: "Fire Emergency", Number: "101", Category: "Emergency", State: "All India", Description: "Fire department emergency number", Icon: "Flame"},
	}
	for _, fields := range published {
		if _, err := service.CreateItem(dbConn, fields); err != nil {
			return err
		}
	}

	pending := []db.ItemFields{
		{Kind: db.KindURL, Name: "MyGov Portal", URL: "https://www.mygov.in", Category: "Public Services", State: "All India", Description: "Citizen engagement platform.", Icon: "Users", SeoTitle: "MyGov India Portal", SeoDescription: "Engage with the Indian government on MyGov, the citizen participation platform.", SeoKeywords: "mygov, citizen engagement, india"},
		{Kind: db.KindContact, Name: "National Cyber Crime Reporting Portal", Number: "1930", Category: "Cyber Crime", State: "All India", Description: "Report cyber threats and crimes.", Icon: "Shield"},
	}
	for _, fields := range pending {
		if _, err := service.SubmitItem(dbConn, fields, seedCfg.Username); err != nil {
			return err
		}
	}

	customCategories := map[db.ItemKind]string{
		db.KindURL:     "Custom URL Test",
		db.KindContact: "Custom Contact Test",
	}
	for kind, name := range customCategories {
		if _, err := service.AddCustomCategory(dbConn, kind, name); err != nil && !errors.Is(err, service.ErrDuplicateCategory) {
			return err
		}
	}

	log.Printf("Seeded %d published items, %d pending submissions, %d custom categories",
		len(published), len(pending), len(customCategories))
	return nil
}
