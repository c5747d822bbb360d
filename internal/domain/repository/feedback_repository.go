package repository

import "github.com/goitom/finance-api/internal/domain/entity"

// FeedbackRepository is the persistence port for feedback submissions.
type FeedbackRepository interface {
	Create(feedback *entity.Feedback) error
	ListByUser(userID string, limit, offset int) ([]*entity.Feedback, error)
}
