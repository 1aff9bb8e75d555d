package models

// UserAnswer freezes the correctness of a selection at submission time.
// Later edits to the referenced option never change historical rows.
type UserAnswer struct {
	ID               uint  `gorm:"primaryKey" json:"id"`
	QuizAttemptID    uint  `gorm:"not null;index" json:"quiz_attempt_id"`
	QuestionID       uint  `gorm:"not null;index" json:"question_id"`
	SelectedOptionID *uint `json:"selected_option_id,omitempty"`
	IsCorrect        bool  `gorm:"not null;default:false" json:"is_correct"`
}
