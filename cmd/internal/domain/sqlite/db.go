package sqlite

import (
	"clinicdesk/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

// DefaultDSN keeps the whole database in process memory; it is lost on exit
// just like the memory driver.
const DefaultDSN = "file::memory:?cache=shared"

func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.User{}, &entity.Appointment{}, &entity.PatientRecord{}, &entity.Notification{})
	if err != nil {
		return nil, err
	}

	// A single connection keeps the in-memory database alive and serializes writers.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
