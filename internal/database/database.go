package database

import (
	"github.com/vikyath5246/quizapp/internal/config"
	"github.com/vikyath5246/quizapp/internal/logger"
	"github.com/vikyath5246/quizapp/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *logger.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	log.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)
	return db
}

func AutoMigrate(db *gorm.DB, log *logger.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.UserAnswer{},
	)
	if err != nil {
		log.Fatal("failed to auto-migrate", "error", err)
	}
	log.Info("database migrated")
}
