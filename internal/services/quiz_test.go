package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vikyath5246/quizapp/internal/models"
)

func TestStartQuizNeverExposesCorrectness(t *testing.T) {
	db := newTestDB(t)
	createCapitalQuestion(t, db)
	svc := NewQuizService(db)

	views, err := svc.StartQuiz()
	if err != nil {
		t.Fatalf("StartQuiz: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 question, got %d", len(views))
	}
	if len(views[0].Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(views[0].Options))
	}

	payload, err := json.Marshal(views)
	if err != nil {
		t.Fatalf("marshal views: %v", err)
	}
	if strings.Contains(string(payload), "is_correct") {
		t.Fatalf("quiz view leaked correctness: %s", payload)
	}
}

func TestStartQuizEmptyBank(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)

	views, err := svc.StartQuiz()
	if err != nil {
		t.Fatalf("StartQuiz on empty bank: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty view list, got %d entries", len(views))
	}
}

func TestSubmitQuizCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	question := createCapitalQuestion(t, db)
	paris := optionByText(t, question, "Paris")
	svc := NewQuizService(db)

	result, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionID: &paris.ID},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.Score != 1 {
		t.Fatalf("expected score=1, got %d", result.Score)
	}
	if result.TotalQuestions != 1 {
		t.Fatalf("expected total_questions=1, got %d", result.TotalQuestions)
	}
	if len(result.QuestionResults) != 1 {
		t.Fatalf("expected 1 result entry, got %d", len(result.QuestionResults))
	}

	entry := result.QuestionResults[0]
	if !entry.IsCorrect {
		t.Fatalf("expected is_correct=true")
	}
	if entry.SelectedOptionID == nil || *entry.SelectedOptionID != paris.ID {
		t.Fatalf("expected selected option %d, got %v", paris.ID, entry.SelectedOptionID)
	}

	// The completed-quiz result reveals correctness for every option.
	revealed := 0
	for _, o := range entry.Options {
		if o.IsCorrect {
			revealed++
			if o.ID != paris.ID {
				t.Fatalf("wrong option marked correct: %d", o.ID)
			}
		}
	}
	if revealed != 1 {
		t.Fatalf("expected exactly 1 correct option in result, got %d", revealed)
	}

	var attempt models.QuizAttempt
	if err := db.First(&attempt, result.AttemptID).Error; err != nil {
		t.Fatalf("attempt not persisted: %v", err)
	}
	if attempt.Score != 1 || attempt.TotalQuestions != 1 {
		t.Fatalf("persisted attempt mismatch: score=%d total=%d", attempt.Score, attempt.TotalQuestions)
	}
	if !attempt.StartTime.Equal(attempt.EndTime) {
		t.Fatalf("start and end time should both reflect submission time")
	}
}

func TestSubmitQuizSkippedAnswer(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	question := createCapitalQuestion(t, db)
	svc := NewQuizService(db)

	result, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: question.ID},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.Score != 0 {
		t.Fatalf("expected score=0, got %d", result.Score)
	}
	entry := result.QuestionResults[0]
	if entry.IsCorrect {
		t.Fatalf("skipped answer must not be correct")
	}
	if entry.SelectedOptionID != nil {
		t.Fatalf("expected no selected option, got %d", *entry.SelectedOptionID)
	}
}

func TestSubmitQuizUnknownOptionTreatedAsSkip(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	question := createCapitalQuestion(t, db)
	svc := NewQuizService(db)

	bogus := uint(99999)
	result, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionID: &bogus},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz with unknown option: %v", err)
	}

	entry := result.QuestionResults[0]
	if entry.IsCorrect || entry.SelectedOptionID != nil {
		t.Fatalf("unknown option should degrade to no selection, got correct=%v selected=%v",
			entry.IsCorrect, entry.SelectedOptionID)
	}

	var answer models.UserAnswer
	if err := db.Where("quiz_attempt_id = ?", result.AttemptID).First(&answer).Error; err != nil {
		t.Fatalf("answer not persisted: %v", err)
	}
	if answer.SelectedOptionID != nil || answer.IsCorrect {
		t.Fatalf("persisted answer should record no selection")
	}
}

func TestSubmitQuizUnknownQuestionRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	question := createCapitalQuestion(t, db)
	paris := optionByText(t, question, "Paris")
	svc := NewQuizService(db)

	_, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionID: &paris.ID},
		{QuestionID: 99999},
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}

	var attempts, answers int64
	db.Model(&models.QuizAttempt{}).Count(&attempts)
	db.Model(&models.UserAnswer{}).Count(&answers)
	if attempts != 0 || answers != 0 {
		t.Fatalf("expected rollback to leave zero rows, got attempts=%d answers=%d", attempts, answers)
	}
}

func TestSubmitQuizUnknownUser(t *testing.T) {
	db := newTestDB(t)
	createCapitalQuestion(t, db)
	svc := NewQuizService(db)

	_, err := svc.SubmitQuiz("ghost", nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSubmitQuizEmptyAnswers(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	svc := NewQuizService(db)

	result, err := svc.SubmitQuiz(user.Username, nil)
	if err != nil {
		t.Fatalf("SubmitQuiz with empty answers: %v", err)
	}
	if result.Score != 0 || result.TotalQuestions != 0 {
		t.Fatalf("expected zero score and total, got score=%d total=%d", result.Score, result.TotalQuestions)
	}
	if len(result.QuestionResults) != 0 {
		t.Fatalf("expected empty result list, got %d", len(result.QuestionResults))
	}

	var attempt models.QuizAttempt
	if err := db.First(&attempt, result.AttemptID).Error; err != nil {
		t.Fatalf("empty submission should still create an attempt: %v", err)
	}
}

func TestSubmitQuizDuplicateQuestionIDs(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	question := createCapitalQuestion(t, db)
	paris := optionByText(t, question, "Paris")
	london := optionByText(t, question, "London")
	svc := NewQuizService(db)

	result, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionID: &paris.ID},
		{QuestionID: question.ID, SelectedOptionID: &london.ID},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	// Duplicates are processed independently, one row each.
	if result.Score != 1 || result.TotalQuestions != 2 {
		t.Fatalf("expected score=1 total=2, got score=%d total=%d", result.Score, result.TotalQuestions)
	}
	var answers int64
	db.Model(&models.UserAnswer{}).Where("quiz_attempt_id = ?", result.AttemptID).Count(&answers)
	if answers != 2 {
		t.Fatalf("expected 2 answer rows, got %d", answers)
	}
}

func TestSubmitQuizScoreMatchesResultEntries(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	q1 := createCapitalQuestion(t, db)
	q2 := createTestQuestion(t, db, "Which planet is known as the Red Planet?",
		map[string]bool{"Venus": false, "Mars": true, "Jupiter": false, "Saturn": false},
		[]string{"Venus", "Mars", "Jupiter", "Saturn"},
	)
	paris := optionByText(t, q1, "Paris")
	venus := optionByText(t, q2, "Venus")
	svc := NewQuizService(db)

	result, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: q1.ID, SelectedOptionID: &paris.ID},
		{QuestionID: q2.ID, SelectedOptionID: &venus.ID},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	correct := 0
	for _, entry := range result.QuestionResults {
		if entry.IsCorrect {
			correct++
		}
	}
	if result.Score != correct {
		t.Fatalf("score %d does not match correct result entries %d", result.Score, correct)
	}
	// Result order follows submission order, not bank order.
	if result.QuestionResults[0].QuestionID != q1.ID || result.QuestionResults[1].QuestionID != q2.ID {
		t.Fatalf("result entries out of submission order")
	}
}

func TestUserAnswerCorrectnessIsSnapshot(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	question := createCapitalQuestion(t, db)
	paris := optionByText(t, question, "Paris")
	svc := NewQuizService(db)

	result, err := svc.SubmitQuiz(user.Username, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionID: &paris.ID},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	// Editing the option later must not rewrite history.
	if err := db.Model(&models.Option{}).Where("id = ?", paris.ID).
		Update("is_correct", false).Error; err != nil {
		t.Fatalf("failed to flip option: %v", err)
	}

	var answer models.UserAnswer
	if err := db.Where("quiz_attempt_id = ?", result.AttemptID).First(&answer).Error; err != nil {
		t.Fatalf("answer not found: %v", err)
	}
	if !answer.IsCorrect {
		t.Fatalf("stored answer correctness must stay frozen at submission time")
	}
}

func TestGetUserScoresOrderedMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user")
	svc := NewQuizService(db)

	older := models.QuizAttempt{
		UserID:         user.ID,
		StartTime:      time.Now().Add(-2 * time.Hour),
		EndTime:        time.Now().Add(-2 * time.Hour),
		TotalQuestions: 3,
		Score:          1,
	}
	newer := models.QuizAttempt{
		UserID:         user.ID,
		StartTime:      time.Now().Add(-1 * time.Hour),
		EndTime:        time.Now().Add(-1 * time.Hour),
		TotalQuestions: 3,
		Score:          2,
	}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("create older attempt: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("create newer attempt: %v", err)
	}

	scores, err := svc.GetUserScores(user.Username)
	if err != nil {
		t.Fatalf("GetUserScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(scores))
	}
	if scores[0].AttemptID != newer.ID || scores[1].AttemptID != older.ID {
		t.Fatalf("expected most recent attempt first, got %d then %d", scores[0].AttemptID, scores[1].AttemptID)
	}
}

func TestGetUserScoresUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)

	_, err := svc.GetUserScores("ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserScoresOnlyOwnAttempts(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	svc := NewQuizService(db)

	for _, uid := range []uint{alice.ID, bob.ID, bob.ID} {
		attempt := models.QuizAttempt{UserID: uid, StartTime: time.Now(), EndTime: time.Now()}
		if err := db.Create(&attempt).Error; err != nil {
			t.Fatalf("create attempt: %v", err)
		}
	}

	scores, err := svc.GetUserScores(bob.Username)
	if err != nil {
		t.Fatalf("GetUserScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected bob's 2 attempts, got %d", len(scores))
	}
}
