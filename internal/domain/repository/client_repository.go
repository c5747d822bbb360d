package repository

import "github.com/goitom/finance-api/internal/domain/entity"

// ClientRepository is the persistence port for Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Client, error)
	CountByUser(userID string) (int, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
