package database

import (
	"fmt"

	"mychild_backend/internal/config"
	"mychild_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с DSN из конфига.
// TranslateError нужен, чтобы нарушение уникального индекса
// приходило как gorm.ErrDuplicatedKey, а не сырая ошибка драйвера.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return gormDB, nil
}

// Migrate прогоняет автомиграцию всех моделей
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 живет в расширении uuid-ossp
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Class{},
		&models.Course{},
		&models.Question{},
		&models.QuizResult{},
		&models.PaymentTransaction{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
