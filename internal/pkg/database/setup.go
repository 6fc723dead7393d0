package database

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
)

var DB *gorm.DB

const maxRetries = 5
const retryDelay = 5 * time.Second

// SetupDatabase connects to MySQL with a retry loop and migrates the portal
// schema. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey, which the filing path relies on for complaint-number
// collision retries.
func SetupDatabase(cfg config.DatabaseConfig) {
	var err error
	dsn := cfg.DSN()

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{TranslateError: true})
		if err == nil {
			DB.AutoMigrate(
				&models.Citizen{},
				&models.Officer{},
				&models.Complaint{},
				&models.ComplaintImage{},
			)

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// GetDB returns the shared GORM handle.
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the shared handle; used by tests.
func SetDB(db *gorm.DB) {
	DB = db
}
