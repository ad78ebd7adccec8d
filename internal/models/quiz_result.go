package models

import "gorm.io/datatypes"

// QuizResult - результат прохождения викторины.
// Answers хранит ответы пользователя как JSON.
type QuizResult struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;not null;index" json:"user_id"`
	SubjectID   string         `gorm:"type:uuid;not null;index" json:"subject_id"`
	SubjectName string         `gorm:"not null" json:"subject_name"`
	Score       int            `gorm:"not null" json:"score"`
	Total       int            `gorm:"not null" json:"total"`
	Percentage  int            `gorm:"not null" json:"percentage"`
	Answers     datatypes.JSON `json:"answers"`
}
