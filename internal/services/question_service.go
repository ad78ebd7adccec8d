package services

import (
	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"

	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(db *gorm.DB, subjectID string) ([]models.Question, error)
	CreateQuestions(db *gorm.DB, subjectID string, req *dto.CreateQuestionsRequest) ([]models.Question, error)
	UpdateQuestion(db *gorm.DB, id string, req *dto.CreateQuestionRequest) (*models.Question, error)
	DeleteQuestion(db *gorm.DB, id string) error
}

type QuestionServiceImpl struct {
	questionRepo repositories.QuestionRepository
	subjectRepo  repositories.SubjectRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, subjectRepo repositories.SubjectRepository) QuestionService {
	return &QuestionServiceImpl{questionRepo: questionRepo, subjectRepo: subjectRepo}
}

func (s *QuestionServiceImpl) ListQuestions(db *gorm.DB, subjectID string) ([]models.Question, error) {
	if err := s.checkSubject(db, subjectID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.FindBySubject(db, subjectID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return questions, nil
}

func (s *QuestionServiceImpl) CreateQuestions(db *gorm.DB, subjectID string, req *dto.CreateQuestionsRequest) ([]models.Question, error) {
	if err := s.checkSubject(db, subjectID); err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, models.Question{
			SubjectID: subjectID,
			Text:      q.Text,
			Answer:    q.Answer,
			Options:   q.Options,
		})
	}

	if err := s.questionRepo.CreateBatch(db, questions); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return questions, nil
}

func (s *QuestionServiceImpl) UpdateQuestion(db *gorm.DB, id string, req *dto.CreateQuestionRequest) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(db, id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrQuestionNotFound) {
			return nil, appErrors.ErrQuestionNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	question.Text = req.Text
	question.Answer = req.Answer
	question.Options = req.Options
	if err := s.questionRepo.Update(db, question); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return question, nil
}

func (s *QuestionServiceImpl) DeleteQuestion(db *gorm.DB, id string) error {
	if err := s.questionRepo.Delete(db, id); err != nil {
		if appErrors.Is(err, repositories.ErrQuestionNotFound) {
			return appErrors.ErrQuestionNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *QuestionServiceImpl) checkSubject(db *gorm.DB, subjectID string) error {
	if _, err := s.subjectRepo.FindByID(db, subjectID); err != nil {
		if appErrors.Is(err, repositories.ErrSubjectNotFound) {
			return appErrors.ErrSubjectNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
