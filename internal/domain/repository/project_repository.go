package repository

import "github.com/goitom/finance-api/internal/domain/entity"

// ProjectRepository is the persistence port for Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Project, error)
	CountByUser(userID string) (int, error)
	Update(project *entity.Project) error
	Delete(id string) error
}
