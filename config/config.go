package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserAllergen{},
		&models.SafeProduct{},
		&models.AllergicProduct{},
		&models.ScanRecord{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.EmergencyContact{},
		&models.EmergencyCard{},
		&models.Alert{},
		&models.UserDevice{},
		&models.ForumPost{},
		&models.ForumComment{},
		&models.ContentReport{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// AllergenDataPath locates the reference allergen dataset consumed at startup.
func AllergenDataPath() string {
	if p := os.Getenv("ALLERGEN_DATA_PATH"); p != "" {
		return p
	}
	return "data/allergens.json"
}
