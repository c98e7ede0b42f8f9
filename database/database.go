package database

import (
	"fmt"
	"log"
	"os"

	"portfolio-app/internal/domain/articles"
	"portfolio-app/internal/domain/contacts"
	"portfolio-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects and migrates against any dialector. Tests use sqlite.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&articles.Article{},
		&articles.Block{},
		&contacts.Contact{},
	)
}

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := Open(postgres.Open(dsn))
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	fmt.Println("✅ Connected and migrated successfully")
}
