package services

import (
	"mychild_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	SubjectService  SubjectService
	CourseService   CourseService
	QuestionService QuestionService
	QuizService     QuizService
	PaymentService  PaymentService
	EmailProvider   email.Provider
}
