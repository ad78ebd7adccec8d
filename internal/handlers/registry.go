package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	SubjectHandler  *SubjectHandler
	CourseHandler   *CourseHandler
	QuestionHandler *QuestionHandler
	QuizHandler     *QuizHandler
	PaymentHandler  *PaymentHandler
}
