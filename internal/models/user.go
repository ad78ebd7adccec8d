package models

// User - единственная сущность с жизненным циклом.
// Инварианты состояния:
//   - phone уникален (уникальный индекс в БД, проверка в приложении -
//     только оптимизация);
//   - ровно одно из двух: {pending_approval=true, approved=false} или
//     {approved=true, pending_approval=false};
//   - is_active=false блокирует логин независимо от approved.
type User struct {
	BaseModel
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	Phone        string `gorm:"uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"not null" json:"-"`
	BirthDate    string `gorm:"not null" json:"birth_date"`
	Country      string `gorm:"not null" json:"country"`
	Nationality  string `gorm:"not null" json:"nationality"`

	Role            UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive        bool     `gorm:"default:true" json:"is_active"`
	Approved        bool     `gorm:"default:false" json:"approved"`
	PendingApproval bool     `gorm:"default:true" json:"pending_approval"`
	HasPaid         bool     `gorm:"default:false" json:"has_paid"`

	// Relations
	Subjects []Subject `gorm:"many2many:user_subjects" json:"-"`
}

// IsPending - заявка ожидает решения администратора
func (u *User) IsPending() bool {
	return u.PendingApproval && !u.Approved
}
