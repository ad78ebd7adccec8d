package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired    ErrorCode = "TOKEN_EXPIRED"
	CodeInvalidPassword ErrorCode = "INVALID_PASSWORD"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidPhone     ErrorCode = "INVALID_PHONE"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Регистрация
	CodeDuplicatePhone   ErrorCode = "DUPLICATE_PHONE"
	CodeDuplicateRequest ErrorCode = "DUPLICATE_REQUEST"
	CodeAccountDisabled  ErrorCode = "ACCOUNT_DISABLED"
	CodeAccountPending   ErrorCode = "ACCOUNT_PENDING"

	// Ресурсы
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeRequestNotFound  ErrorCode = "REQUEST_NOT_FOUND"
	CodeSubjectNotFound  ErrorCode = "SUBJECT_NOT_FOUND"
	CodeClassNotFound    ErrorCode = "CLASS_NOT_FOUND"
	CodeCourseNotFound   ErrorCode = "COURSE_NOT_FOUND"
	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"

	// Платежи
	CodePaymentGateway  ErrorCode = "PAYMENT_GATEWAY_ERROR"
	CodePaymentNotFound ErrorCode = "PAYMENT_NOT_FOUND"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
