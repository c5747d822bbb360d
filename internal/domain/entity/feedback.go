package entity

import "time"

// Feedback types a user can pick when submitting.
const (
	FeedbackTypeGeneral     = "general"
	FeedbackTypeBug         = "bug"
	FeedbackTypeFeature     = "feature"
	FeedbackTypeImprovement = "improvement"
)

// Feedback review statuses. Submissions always start as new; the later
// states belong to the review workflow.
const (
	FeedbackStatusNew      = "new"
	FeedbackStatusRead     = "read"
	FeedbackStatusResolved = "resolved"
	FeedbackStatusArchived = "archived"
)

// Feedback is a user-submitted product feedback message.
type Feedback struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	Status    string
	CreatedAt time.Time
}
