package dto

import "time"

// FeedbackRequest body for POST /api/feedback. Type defaults to "general".
type FeedbackRequest struct {
	Type    string `json:"type,omitempty"` // general, bug, feature, improvement
	Message string `json:"message"`
}

// FeedbackResponse a stored feedback submission.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackListResponse paged listing of the user's own submissions.
type FeedbackListResponse struct {
	Items []FeedbackResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
