package services

import (
	"testing"

	"github.com/vikyath5246/quizapp/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.UserAnswer{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@quiz.com",
		PasswordHash: "not-a-real-hash",
		Role:         models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return &user
}

// createTestQuestion inserts a question with one option per (text, correct)
// pair and returns it with options loaded in insertion order.
func createTestQuestion(t *testing.T, db *gorm.DB, text string, options map[string]bool, order []string) *models.Question {
	t.Helper()

	question := models.Question{Text: text}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	for _, optText := range order {
		opt := models.Option{
			QuestionID: question.ID,
			Text:       optText,
			IsCorrect:  options[optText],
		}
		if err := db.Create(&opt).Error; err != nil {
			t.Fatalf("failed to create option %q: %v", optText, err)
		}
	}
	if err := db.Preload("Options").First(&question, question.ID).Error; err != nil {
		t.Fatalf("failed to reload question: %v", err)
	}
	return &question
}

func createCapitalQuestion(t *testing.T, db *gorm.DB) *models.Question {
	t.Helper()
	return createTestQuestion(t, db, "What is the capital of France?",
		map[string]bool{"London": false, "Paris": true, "Berlin": false, "Madrid": false},
		[]string{"London", "Paris", "Berlin", "Madrid"},
	)
}

func optionByText(t *testing.T, q *models.Question, text string) *models.Option {
	t.Helper()
	for i := range q.Options {
		if q.Options[i].Text == text {
			return &q.Options[i]
		}
	}
	t.Fatalf("option %q not found on question %d", text, q.ID)
	return nil
}
