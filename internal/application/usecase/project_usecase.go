package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProjectUseCase applies the business rules for projects.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase builds the use case with its persistence port.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Create stores a new project for the user. Status defaults to active.
func (uc *ProjectUseCase) Create(userID string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	project, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project.ID = uuid.New().String()
	project.UserID = userID
	project.CreatedAt = now
	project.UpdatedAt = now
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Update overwrites the project's fields.
func (uc *ProjectUseCase) Update(userID, projectID string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	existing, err := uc.owned(userID, projectID)
	if err != nil {
		return nil, err
	}
	project, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	project.ID = existing.ID
	project.UserID = existing.UserID
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete removes the project.
func (uc *ProjectUseCase) Delete(userID, projectID string) error {
	if _, err := uc.owned(userID, projectID); err != nil {
		return err
	}
	return uc.repo.Delete(projectID)
}

// GetByID returns one project.
func (uc *ProjectUseCase) GetByID(userID, projectID string) (*dto.ProjectResponse, error) {
	project, err := uc.owned(userID, projectID)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List returns the user's projects with pagination.
func (uc *ProjectUseCase) List(userID string, limit, offset int) (*dto.ProjectListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ProjectUseCase) owned(userID, projectID string) (*entity.Project, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if project.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func buildProject(in dto.ProjectRequest) (*entity.Project, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", domain.ErrInvalidInput, err)
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", domain.ErrInvalidInput, err)
	}
	return &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
		Budget:      in.Budget,
		ClientID:    in.ClientID,
	}, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   formatOptionalDate(p.StartDate),
		EndDate:     formatOptionalDate(p.EndDate),
		Budget:      p.Budget,
		ClientID:    p.ClientID,
	}
}
