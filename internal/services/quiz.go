package services

import (
	"time"

	"github.com/vikyath5246/quizapp/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// OptionView deliberately has no correctness field: the quiz-taking client
// must never see which option is right before submitting.
type OptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
}

type AnswerSubmission struct {
	QuestionID       uint  `json:"question_id" binding:"required"`
	SelectedOptionID *uint `json:"selected_option_id"`
}

type OptionResult struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionResult struct {
	QuestionID       uint           `json:"question_id"`
	Text             string         `json:"text"`
	Options          []OptionResult `json:"options"`
	SelectedOptionID *uint          `json:"selected_option_id,omitempty"`
	IsCorrect        bool           `json:"is_correct"`
}

type QuizResult struct {
	AttemptID       uint             `json:"attempt_id"`
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"total_questions"`
	EndTime         time.Time        `json:"end_time"`
	QuestionResults []QuestionResult `json:"question_results"`
}

type ScoreSummary struct {
	AttemptID      uint      `json:"attempt_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
}

// StartQuiz returns every question in the bank with correctness stripped.
// An empty bank yields an empty list, not an error.
func (s *QuizService) StartQuiz() ([]QuestionView, error) {
	var questions []models.Question
	if err := s.db.Preload("Options").Find(&questions).Error; err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		opts := make([]OptionView, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, OptionView{ID: o.ID, Text: o.Text})
		}
		views = append(views, QuestionView{ID: q.ID, Text: q.Text, Options: opts})
	}
	return views, nil
}

// SubmitQuiz scores a batch of answers for the named user inside one
// transaction. An unknown question id aborts the whole submission; an unknown
// selected option id degrades to "no selection". Start and end time both
// reflect submission time, matching how attempts are recorded upstream.
func (s *QuizService) SubmitQuiz(username string, answers []AnswerSubmission) (*QuizResult, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	attempt := models.QuizAttempt{
		UserID:         user.ID,
		StartTime:      now,
		EndTime:        now,
		TotalQuestions: len(answers),
	}

	tx := s.db.Begin()
	if err := tx.Create(&attempt).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	score := 0
	results := make([]QuestionResult, 0, len(answers))
	for _, submission := range answers {
		var question models.Question
		if err := tx.Preload("Options").First(&question, submission.QuestionID).Error; err != nil {
			tx.Rollback()
			return nil, ErrQuestionNotFound
		}

		var selected *models.Option
		if submission.SelectedOptionID != nil {
			var option models.Option
			if err := tx.First(&option, *submission.SelectedOptionID).Error; err == nil {
				selected = &option
			}
		}

		isCorrect := selected != nil && selected.IsCorrect

		answer := models.UserAnswer{
			QuizAttemptID: attempt.ID,
			QuestionID:    question.ID,
			IsCorrect:     isCorrect,
		}
		if selected != nil {
			answer.SelectedOptionID = &selected.ID
		}
		if err := tx.Create(&answer).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		if isCorrect {
			score++
		}

		optResults := make([]OptionResult, 0, len(question.Options))
		for _, o := range question.Options {
			optResults = append(optResults, OptionResult{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect})
		}

		results = append(results, QuestionResult{
			QuestionID:       question.ID,
			Text:             question.Text,
			Options:          optResults,
			SelectedOptionID: answer.SelectedOptionID,
			IsCorrect:        isCorrect,
		})
	}

	attempt.Score = score
	if err := tx.Save(&attempt).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &QuizResult{
		AttemptID:       attempt.ID,
		Score:           score,
		TotalQuestions:  attempt.TotalQuestions,
		EndTime:         attempt.EndTime,
		QuestionResults: results,
	}, nil
}

// GetUserScores lists the user's past attempts, most recent first.
func (s *QuizService) GetUserScores(username string) ([]ScoreSummary, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var attempts []models.QuizAttempt
	if err := s.db.Where("user_id = ?", user.ID).
		Order("start_time DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	scores := make([]ScoreSummary, 0, len(attempts))
	for _, a := range attempts {
		scores = append(scores, ScoreSummary{
			AttemptID:      a.ID,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			StartTime:      a.StartTime,
			EndTime:        a.EndTime,
		})
	}
	return scores, nil
}
