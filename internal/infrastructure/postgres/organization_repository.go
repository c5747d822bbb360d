package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implements OrganizationRepository. One row per user,
// enforced by a unique constraint on user_id.
type OrganizationRepo struct {
	q Querier
}

func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// GetByUser returns the user's organization, or nil when none exists yet.
func (r *OrganizationRepo) GetByUser(userID string) (*entity.Organization, error) {
	query := `
		SELECT id, user_id, name, address, city, country, postal_code, phone, email, website, tax_id, logo_url, created_at, updated_at
		FROM organizations WHERE user_id = $1`
	var o entity.Organization
	var address, city, country, postalCode, phone, email, website, taxID, logoURL *string
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&o.ID, &o.UserID, &o.Name, &address, &city, &country, &postalCode,
		&phone, &email, &website, &taxID, &logoURL,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	o.Address = derefStr(address)
	o.City = derefStr(city)
	o.Country = derefStr(country)
	o.PostalCode = derefStr(postalCode)
	o.Phone = derefStr(phone)
	o.Email = derefStr(email)
	o.Website = derefStr(website)
	o.TaxID = derefStr(taxID)
	o.LogoURL = derefStr(logoURL)
	return &o, nil
}

// Create persists the organization row.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, user_id, name, address, city, country, postal_code, phone, email, website, tax_id, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.UserID, org.Name,
		nullIfEmpty(org.Address), nullIfEmpty(org.City), nullIfEmpty(org.Country),
		nullIfEmpty(org.PostalCode), nullIfEmpty(org.Phone), nullIfEmpty(org.Email),
		nullIfEmpty(org.Website), nullIfEmpty(org.TaxID), nullIfEmpty(org.LogoURL),
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// Update overwrites the organization's fields.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, address = $3, city = $4, country = $5, postal_code = $6,
		    phone = $7, email = $8, website = $9, tax_id = $10, logo_url = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name,
		nullIfEmpty(org.Address), nullIfEmpty(org.City), nullIfEmpty(org.Country),
		nullIfEmpty(org.PostalCode), nullIfEmpty(org.Phone), nullIfEmpty(org.Email),
		nullIfEmpty(org.Website), nullIfEmpty(org.TaxID), nullIfEmpty(org.LogoURL),
		org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}
