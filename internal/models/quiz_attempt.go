package models

import "time"

type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	StartTime      time.Time `gorm:"not null;index:idx_attempt_user_start" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	Score          int       `gorm:"not null;default:0" json:"score"`
}
