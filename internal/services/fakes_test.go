package services

import (
	"strings"
	"time"

	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeUserRepo - потокобезопасность не нужна, тесты однопоточные
type fakeUserRepo struct {
	users map[string]*models.User // по ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) FindByPhone(_ *gorm.DB, phone string) (*models.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Phone, phone) {
			copy := *user
			return &copy, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Phone, user.Phone) {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Approve(_ *gorm.DB, userID string) error {
	user, ok := r.users[userID]
	if !ok || !user.PendingApproval {
		return repositories.ErrUserNotFound
	}
	user.Approved = true
	user.PendingApproval = false
	user.IsActive = true
	return nil
}

func (r *fakeUserRepo) SetActive(_ *gorm.DB, userID string, active bool) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

func (r *fakeUserRepo) SetHasPaid(_ *gorm.DB, userID string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.HasPaid = true
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.User, int64, error) {
	out := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) FindPending(_ *gorm.DB) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.PendingApproval {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountPending(_ *gorm.DB) (int64, error) {
	pending, _ := r.FindPending(nil)
	return int64(len(pending)), nil
}

func (r *fakeUserRepo) FindSubjects(_ *gorm.DB, userID string) ([]models.Subject, error) {
	return nil, nil
}

type fakeSubjectRepo struct {
	subjects map[string]*models.Subject
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[string]*models.Subject)}
}

func (r *fakeSubjectRepo) add(name string) *models.Subject {
	subject := &models.Subject{Name: name}
	subject.ID = uuid.NewString()
	r.subjects[subject.ID] = subject
	return subject
}

func (r *fakeSubjectRepo) FindAll(_ *gorm.DB) ([]models.Subject, error) {
	out := make([]models.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSubjectRepo) FindByID(_ *gorm.DB, id string) (*models.Subject, error) {
	s, ok := r.subjects[id]
	if !ok {
		return nil, repositories.ErrSubjectNotFound
	}
	copy := *s
	return &copy, nil
}

func (r *fakeSubjectRepo) Create(_ *gorm.DB, subject *models.Subject) error {
	subject.ID = uuid.NewString()
	r.subjects[subject.ID] = subject
	return nil
}

func (r *fakeSubjectRepo) Update(_ *gorm.DB, subject *models.Subject) error {
	if _, ok := r.subjects[subject.ID]; !ok {
		return repositories.ErrSubjectNotFound
	}
	r.subjects[subject.ID] = subject
	return nil
}

func (r *fakeSubjectRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.subjects[id]; !ok {
		return repositories.ErrSubjectNotFound
	}
	delete(r.subjects, id)
	return nil
}

func (r *fakeSubjectRepo) FindClasses(_ *gorm.DB, subjectID string) ([]models.Class, error) {
	return nil, nil
}

func (r *fakeSubjectRepo) FindClassByID(_ *gorm.DB, id string) (*models.Class, error) {
	return nil, repositories.ErrClassNotFound
}

func (r *fakeSubjectRepo) CreateClass(_ *gorm.DB, class *models.Class) error  { return nil }
func (r *fakeSubjectRepo) UpdateClass(_ *gorm.DB, class *models.Class) error  { return nil }
func (r *fakeSubjectRepo) DeleteClass(_ *gorm.DB, id string) error            { return nil }
func (r *fakeSubjectRepo) AttachUser(_ *gorm.DB, subjectID, userID string) error {
	return nil
}
func (r *fakeSubjectRepo) DetachUser(_ *gorm.DB, subjectID, userID string) error {
	return nil
}

type fakeQuizResultRepo struct {
	results []models.QuizResult
}

func (r *fakeQuizResultRepo) Create(_ *gorm.DB, result *models.QuizResult) error {
	result.ID = uuid.NewString()
	result.CreatedAt = time.Now()
	r.results = append([]models.QuizResult{*result}, r.results...)
	return nil
}

func (r *fakeQuizResultRepo) FindByUser(_ *gorm.DB, userID string) ([]models.QuizResult, error) {
	var out []models.QuizResult
	for _, res := range r.results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeQuizResultRepo) FindByUserAndSubject(_ *gorm.DB, userID, subjectID string) ([]models.QuizResult, error) {
	var out []models.QuizResult
	for _, res := range r.results {
		if res.UserID == userID && res.SubjectID == subjectID {
			out = append(out, res)
		}
	}
	return out, nil
}
