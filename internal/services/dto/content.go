package dto

import "gorm.io/datatypes"

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type UpdateSubjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type CreateClassRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type UpdateClassRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type CreateCourseRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=300"`
	Content string `json:"content" validate:"required"`
}

type UpdateCourseRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=300"`
	Content string `json:"content" validate:"required"`
}

type CreateQuestionRequest struct {
	Text    string         `json:"question" validate:"required,min=1"`
	Answer  string         `json:"answer" validate:"required"`
	Options datatypes.JSON `json:"options" validate:"required"`
}

// CreateQuestionsRequest принимает пачку вопросов для одного предмета
type CreateQuestionsRequest struct {
	Questions []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}
