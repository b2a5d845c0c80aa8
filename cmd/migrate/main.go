package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, stmt := range setupSQL {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("Error: Setup statement failed: %v", err)
		}
	}

	if err := db.AutoMigrate(
		&model.BlogPost{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration complete")
}
