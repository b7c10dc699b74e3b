package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/booking-api/internal/config"
	"github.com/NavalhaDigital/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Professional{},
		&models.Client{},
		&models.Booking{},
		&models.BookingService{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	backfillTimeSeconds(db)

	return db
}

// Linhas antigas gravadas como HH:MM ganham segundos.
func backfillTimeSeconds(db *gorm.DB) {
	err := db.Exec(`
        UPDATE bookings
        SET time = time || ':00'
        WHERE length(time) = 5
    `).Error
	if err != nil {
		log.Printf("time backfill failed: %v", err)
	}
}
