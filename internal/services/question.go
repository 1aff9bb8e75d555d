package services

import (
	"github.com/vikyath5246/quizapp/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type OptionInput struct {
	Text      string `json:"text" binding:"required,min=1,max=200"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionInput struct {
	Text    string        `json:"text" binding:"required,min=10,max=500"`
	Options []OptionInput `json:"options" binding:"required,dive"`
}

func (s *QuestionService) GetAllQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Preload("Options").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) GetQuestionByID(questionID uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.Preload("Options").First(&question, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}
	return &question, nil
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	question := models.Question{Text: input.Text}

	tx := s.db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, o := range input.Options {
		opt := models.Option{
			QuestionID: question.ID,
			Text:       o.Text,
			IsCorrect:  o.IsCorrect,
		}
		if err := tx.Create(&opt).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.db.Preload("Options").First(&question, question.ID)
	return &question, nil
}

// UpdateQuestion replaces the full option set: existing options are deleted
// and recreated from the input. Historical UserAnswer rows keep their frozen
// correctness and are not touched.
func (s *QuestionService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	tx := s.db.Begin()

	question.Text = input.Text
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("question_id = ?", questionID).Delete(&models.Option{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, o := range input.Options {
		opt := models.Option{
			QuestionID: questionID,
			Text:       o.Text,
			IsCorrect:  o.IsCorrect,
		}
		if err := tx.Create(&opt).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.db.Preload("Options").First(&question, questionID)
	return &question, nil
}

// DeleteQuestion cascades at the application level: answers referencing the
// question go first, then its options, then the question itself.
func (s *QuestionService) DeleteQuestion(questionID uint) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return ErrQuestionNotFound
	}

	tx := s.db.Begin()
	if err := tx.Where("question_id = ?", questionID).Delete(&models.UserAnswer{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("question_id = ?", questionID).Delete(&models.Option{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
