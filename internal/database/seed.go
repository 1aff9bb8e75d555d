package database

import (
	"github.com/vikyath5246/quizapp/internal/logger"
	"github.com/vikyath5246/quizapp/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedOption struct {
	text    string
	correct bool
}

type seedQuestion struct {
	text    string
	options []seedOption
}

var sampleQuestions = []seedQuestion{
	{
		text: "What is the capital of France?",
		options: []seedOption{
			{"London", false},
			{"Paris", true},
			{"Berlin", false},
			{"Madrid", false},
		},
	},
	{
		text: "Which planet is known as the Red Planet?",
		options: []seedOption{
			{"Venus", false},
			{"Mars", true},
			{"Jupiter", false},
			{"Saturn", false},
		},
	},
	{
		text: "What is 2 + 2?",
		options: []seedOption{
			{"3", false},
			{"4", true},
			{"5", false},
			{"6", false},
		},
	},
}

// Seed creates the default admin and user accounts plus a small sample
// question bank. Safe to run on every boot: existing rows are left alone.
func Seed(db *gorm.DB, log *logger.Logger) {
	seedUser(db, log, "admin", "admin@quiz.com", "admin123", models.RoleAdmin)
	seedUser(db, log, "user", "user@quiz.com", "user123", models.RoleUser)

	var count int64
	db.Model(&models.Question{}).Count(&count)
	if count > 0 {
		return
	}

	for _, sq := range sampleQuestions {
		question := models.Question{Text: sq.text}
		if err := db.Create(&question).Error; err != nil {
			log.Error("failed to seed question", "text", sq.text, "error", err)
			continue
		}
		for _, so := range sq.options {
			opt := models.Option{
				QuestionID: question.ID,
				Text:       so.text,
				IsCorrect:  so.correct,
			}
			if err := db.Create(&opt).Error; err != nil {
				log.Error("failed to seed option", "text", so.text, "error", err)
			}
		}
	}
	log.Info("sample questions seeded", "count", len(sampleQuestions))
}

func seedUser(db *gorm.DB, log *logger.Logger, username, email, password, role string) {
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash seed password", "username", username, "error", err)
		return
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Error("failed to seed user", "username", username, "error", err)
		return
	}
	log.Info("seeded user", "username", username, "role", role)
}
