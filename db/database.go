package db

import (
	"log"
	"os"
	"path/filepath"

	"menuapi/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the sqlite database at the given path, registers the
// product/topping join table and migrates the schema. Tests pass
// ":memory:" here.
func Connect(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := DB.SetupJoinTable(&models.Product{}, "Toppings", &models.ProductTopping{}); err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.Product{}, &models.ToppingGroup{}, &models.Topping{},
		&models.ProductTopping{}, &models.Rating{},
	)
}

func InitDatabase() {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	if err := Connect(dbPath); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)
}
