package database

import (
	"fmt"
	"log"
	"strings"

	"hrms/config"
	"hrms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and migrates the schema. When the DSN carries no
// explicit sslmode it first tries an encrypted connection and falls back to an
// unencrypted one; the fallback happens at startup only.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := open(withSSLMode(cfg.DatabaseURL, "require"))
	if err == nil {
		log.Println("Connected to database (TLS)")
	} else {
		db, err = open(withSSLMode(cfg.DatabaseURL, "disable"))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		log.Println("Connected to database (TLS disabled)")
	}

	// Auto migrate the schema; this also creates the unique indexes on
	// employees and the composite (employee_id, date) index on attendance.
	if err := db.AutoMigrate(&models.Employee{}, &models.Attendance{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

func withSSLMode(dsn, mode string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "sslmode=" + mode
}
