package services

import (
	"math"

	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"

	"gorm.io/gorm"
)

type QuizService interface {
	SaveResult(db *gorm.DB, userID string, req *dto.SaveQuizResultRequest) (*dto.QuizResultResponse, error)
	ListResults(db *gorm.DB, userID string) ([]dto.QuizResultResponse, error)
}

type QuizServiceImpl struct {
	resultRepo  repositories.QuizResultRepository
	subjectRepo repositories.SubjectRepository
}

func NewQuizService(resultRepo repositories.QuizResultRepository, subjectRepo repositories.SubjectRepository) QuizService {
	return &QuizServiceImpl{resultRepo: resultRepo, subjectRepo: subjectRepo}
}

// SaveResult сохраняет результат прохождения теста.
// Процент считается на сервере от score/total.
func (s *QuizServiceImpl) SaveResult(db *gorm.DB, userID string, req *dto.SaveQuizResultRequest) (*dto.QuizResultResponse, error) {
	if req.Score > req.Total {
		return nil, appErrors.ValidationError(map[string]string{
			"score": "score cannot exceed total",
		})
	}

	subjectName := req.SubjectName
	if subject, err := s.subjectRepo.FindByID(db, req.SubjectID); err == nil {
		subjectName = subject.Name
	} else if appErrors.Is(err, repositories.ErrSubjectNotFound) {
		return nil, appErrors.ErrSubjectNotFound
	} else {
		return nil, appErrors.InternalError(err)
	}

	result := &models.QuizResult{
		UserID:      userID,
		SubjectID:   req.SubjectID,
		SubjectName: subjectName,
		Score:       req.Score,
		Total:       req.Total,
		Percentage:  percentage(req.Score, req.Total),
		Answers:     req.Answers,
	}

	if err := s.resultRepo.Create(db, result); err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := toQuizResultResponse(result)
	return &resp, nil
}

// ListResults возвращает результаты пользователя от новых к старым
func (s *QuizServiceImpl) ListResults(db *gorm.DB, userID string) ([]dto.QuizResultResponse, error) {
	results, err := s.resultRepo.FindByUser(db, userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.QuizResultResponse, 0, len(results))
	for i := range results {
		out = append(out, toQuizResultResponse(&results[i]))
	}
	return out, nil
}

func percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

func toQuizResultResponse(r *models.QuizResult) dto.QuizResultResponse {
	return dto.QuizResultResponse{
		ID:          r.ID,
		SubjectID:   r.SubjectID,
		SubjectName: r.SubjectName,
		Score:       r.Score,
		Total:       r.Total,
		Percentage:  r.Percentage,
		Answers:     r.Answers,
		CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
