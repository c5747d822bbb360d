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

// ClientUseCase applies the business rules for clients.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case with its persistence port.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create stores a new client for the user.
func (uc *ClientUseCase) Create(userID string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		Country:    in.Country,
		PostalCode: in.PostalCode,
		TaxID:      in.TaxID,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update overwrites the client's fields.
func (uc *ClientUseCase) Update(userID, clientID string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.owned(userID, clientID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.City = in.City
	client.Country = in.Country
	client.PostalCode = in.PostalCode
	client.TaxID = in.TaxID
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete removes the client. Invoices and projects keep their rows: the
// schema sets their client_id to NULL.
func (uc *ClientUseCase) Delete(userID, clientID string) error {
	if _, err := uc.owned(userID, clientID); err != nil {
		return err
	}
	return uc.repo.Delete(clientID)
}

// GetByID returns one client.
func (uc *ClientUseCase) GetByID(userID, clientID string) (*dto.ClientResponse, error) {
	client, err := uc.owned(userID, clientID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List returns the user's clients with pagination.
func (uc *ClientUseCase) List(userID string, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ClientUseCase) owned(userID, clientID string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		Country:    c.Country,
		PostalCode: c.PostalCode,
		TaxID:      c.TaxID,
		Notes:      c.Notes,
	}
}
