package repository

import "github.com/goitom/finance-api/internal/domain/entity"

// OrganizationRepository is the persistence port for the per-user
// organization singleton.
type OrganizationRepository interface {
	GetByUser(userID string) (*entity.Organization, error)
	Create(org *entity.Organization) error
	Update(org *entity.Organization) error
}
