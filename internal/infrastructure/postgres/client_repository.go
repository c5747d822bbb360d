package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements ClientRepository (usable with pool or tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter. Pass a pool or tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persists the client.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, email, phone, address, city, country, postal_code, tax_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name,
		nullIfEmpty(client.Email), nullIfEmpty(client.Phone), nullIfEmpty(client.Address),
		nullIfEmpty(client.City), nullIfEmpty(client.Country), nullIfEmpty(client.PostalCode),
		nullIfEmpty(client.TaxID), nullIfEmpty(client.Notes),
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID returns a client by ID, or nil when not found.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := clientSelect + ` WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// ListByUser returns the user's clients ordered by name.
func (r *ClientRepo) ListByUser(userID string, limit, offset int) ([]*entity.Client, error) {
	query := clientSelect + ` WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByUser returns the number of clients the user has.
func (r *ClientRepo) CountByUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM clients WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// Update overwrites the client's fields.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, address = $5, city = $6,
		    country = $7, postal_code = $8, tax_id = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name,
		nullIfEmpty(client.Email), nullIfEmpty(client.Phone), nullIfEmpty(client.Address),
		nullIfEmpty(client.City), nullIfEmpty(client.Country), nullIfEmpty(client.PostalCode),
		nullIfEmpty(client.TaxID), nullIfEmpty(client.Notes),
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes the client. Invoices and projects referencing it keep
// existing with the reference set to NULL.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

const clientSelect = `
	SELECT id, user_id, name, email, phone, address, city, country, postal_code, tax_id, notes, created_at, updated_at
	FROM clients`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var email, phone, address, city, country, postalCode, taxID, notes *string
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &email, &phone, &address,
		&city, &country, &postalCode, &taxID, &notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Email = derefStr(email)
	c.Phone = derefStr(phone)
	c.Address = derefStr(address)
	c.City = derefStr(city)
	c.Country = derefStr(country)
	c.PostalCode = derefStr(postalCode)
	c.TaxID = derefStr(taxID)
	c.Notes = derefStr(notes)
	return &c, nil
}
