package dto

import "gorm.io/datatypes"

// SaveQuizResultRequest — сырой результат прохождения теста.
// Процент сервер считает сам, клиентским значениям не доверяем.
type SaveQuizResultRequest struct {
	SubjectID   string         `json:"subject_id" validate:"required,uuid"`
	SubjectName string         `json:"subject_name" validate:"omitempty,max=200"`
	Score       int            `json:"score" validate:"min=0"`
	Total       int            `json:"total" validate:"required,min=1"`
	Answers     datatypes.JSON `json:"answers" validate:"omitempty"`
}

type QuizResultResponse struct {
	ID          string         `json:"id"`
	SubjectID   string         `json:"subject_id"`
	SubjectName string         `json:"subject_name"`
	Score       int            `json:"score"`
	Total       int            `json:"total"`
	Percentage  int            `json:"percentage"`
	Answers     datatypes.JSON `json:"answers,omitempty"`
	CreatedAt   string         `json:"created_at"`
}
