package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

// FeedbackUseCase records product feedback submissions. Review of the
// submissions is out of scope here; every submission lands as status new.
type FeedbackUseCase struct {
	repo repository.FeedbackRepository
}

func NewFeedbackUseCase(repo repository.FeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// Submit stores a feedback message. An empty type means general.
func (uc *FeedbackUseCase) Submit(userID string, in dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	kind := in.Type
	if kind == "" {
		kind = entity.FeedbackTypeGeneral
	}
	if !validFeedbackType(kind) {
		return nil, fmt.Errorf("%w: unknown feedback type %q", domain.ErrInvalidInput, kind)
	}

	feedback := &entity.Feedback{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      kind,
		Message:   message,
		Status:    entity.FeedbackStatusNew,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(feedback); err != nil {
		return nil, err
	}
	return toFeedbackResponse(feedback), nil
}

// ListMine returns the user's own submissions with pagination.
func (uc *FeedbackUseCase) ListMine(userID string, limit, offset int) (*dto.FeedbackListResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeedbackResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFeedbackResponse(f))
	}
	return &dto.FeedbackListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func validFeedbackType(kind string) bool {
	switch kind {
	case entity.FeedbackTypeGeneral, entity.FeedbackTypeBug,
		entity.FeedbackTypeFeature, entity.FeedbackTypeImprovement:
		return true
	}
	return false
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:        f.ID,
		Type:      f.Type,
		Message:   f.Message,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}
