package database

import (
	"log"
	"os"
	"time"

	"cyberdeck/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Migrate wires the explicit library join model and runs schema migrations.
// It is shared between Connect and the test setup.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "Library", &models.LibraryEntry{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Game{}, "Owners", &models.LibraryEntry{}); err != nil {
		return err
	}
	return db.AutoMigrate(&models.User{}, &models.Game{}, &models.Review{})
}
