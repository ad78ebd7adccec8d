package dto

import (
	"mychild_backend/internal/models"
)

// RegisterRequest — тело POST /register.
// SecretKey сравнивается с серверным админским секретом, в ответ не попадает.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	Phone       string `json:"phone" validate:"required,is-phone"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	BirthDate   string `json:"birth_date" validate:"required,max=30"`
	Country     string `json:"country" validate:"required,max=100"`
	Nationality string `json:"nationality" validate:"required,max=100"`
	Role        string `json:"role" validate:"omitempty,is-user-role"`
	SecretKey   string `json:"secret_key" validate:"omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse — публичное представление пользователя, без хэша пароля
type UserResponse struct {
	ID              string `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	BirthDate       string `json:"birth_date,omitempty"`
	Country         string `json:"country,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	Role            string `json:"role"`
	IsActive        bool   `json:"is_active"`
	Approved        bool   `json:"approved"`
	PendingApproval bool   `json:"pending_approval"`
	HasPaid         bool   `json:"has_paid"`
	CreatedAt       string `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		BirthDate:       u.BirthDate,
		Country:         u.Country,
		Nationality:     u.Nationality,
		Role:            string(u.Role),
		IsActive:        u.IsActive,
		Approved:        u.Approved,
		PendingApproval: u.PendingApproval,
		HasPaid:         u.HasPaid,
		CreatedAt:       u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
