package database

import (
	"agrofarm-backend/internal/config"
	"agrofarm-backend/internal/logger"
	"agrofarm-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.L.Fatalf("could not connect to the database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Animal{},
		&models.Employee{},
		&models.EmployeeTask{},
		&models.CartLine{},
		&models.AuditLog{},
	)
	if err != nil {
		logger.L.Fatalf("AutoMigrate failed: %v", err)
	}

	logger.L.Info("database connected, migration complete")
}
