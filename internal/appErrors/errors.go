package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по коду, чтобы копии из WithDetails
// матчились с предопределенными ошибками через errors.Is
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !stderrors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON (скрываем Err и HTTPCode)
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация. Отсутствующий credential - 401,
	// невалидный/истекший токен и нехватка прав - 403.
	ErrUnauthorized = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken, "Invalid token", http.StatusForbidden)
	ErrTokenExpired = New(CodeTokenExpired, "Token expired", http.StatusForbidden)
	ErrForbidden    = New(CodeForbidden, "Admin access required", http.StatusForbidden)

	// Логин
	ErrInvalidPassword = New(CodeInvalidPassword, "Invalid password", http.StatusUnauthorized)
	ErrAccountDisabled = New(CodeAccountDisabled, "Account is disabled", http.StatusForbidden)
	ErrAccountPending  = New(CodeAccountPending, "Account is awaiting approval", http.StatusForbidden)

	// Регистрация
	ErrDuplicatePhone   = New(CodeDuplicatePhone, "Phone number is already registered", http.StatusBadRequest)
	ErrDuplicateRequest = New(CodeDuplicateRequest, "A registration request for this phone is already pending", http.StatusBadRequest)
	ErrWeakPassword     = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidPhone     = New(CodeInvalidPhone, "Phone number must match international format", http.StatusBadRequest)

	// Ресурсы
	ErrUserNotFound     = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrRequestNotFound  = New(CodeRequestNotFound, "Registration request not found", http.StatusNotFound)
	ErrSubjectNotFound  = New(CodeSubjectNotFound, "Subject not found", http.StatusNotFound)
	ErrClassNotFound    = New(CodeClassNotFound, "Class not found", http.StatusNotFound)
	ErrCourseNotFound   = New(CodeCourseNotFound, "Course not found", http.StatusNotFound)
	ErrQuestionNotFound = New(CodeQuestionNotFound, "Question not found", http.StatusNotFound)

	// Платежи
	ErrPaymentGateway  = New(CodePaymentGateway, "Payment gateway request failed", http.StatusBadRequest)
	ErrPaymentNotFound = New(CodePaymentNotFound, "Payment transaction not found", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// ValidationError создает ошибку валидации с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// InternalError оборачивает ошибку хранилища/системы, клиенту уходит
// generic сообщение
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}
