package postgres

import (
	"context"
	"fmt"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implements FeedbackRepository. Submissions are insert-only
// from the API; the review workflow updates status elsewhere.
type FeedbackRepo struct {
	q Querier
}

func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

// Create persists a feedback submission.
func (r *FeedbackRepo) Create(feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, type, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		feedback.ID, feedback.UserID, feedback.Type, feedback.Message,
		feedback.Status, feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ListByUser returns the user's own submissions, newest first.
func (r *FeedbackRepo) ListByUser(userID string, limit, offset int) ([]*entity.Feedback, error) {
	query := `
		SELECT id, user_id, type, message, status, created_at
		FROM feedback WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()
	var list []*entity.Feedback
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Type, &f.Message, &f.Status, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
