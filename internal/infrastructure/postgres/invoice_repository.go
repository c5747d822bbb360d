package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, user_id, invoice_number, issue_date, due_date, status, subtotal, tax_rate, tax_amount, total, notes, terms, client_id, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.UserID, invoice.InvoiceNumber, invoice.IssueDate, invoice.DueDate,
		invoice.Status, invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.Total,
		nullIfEmpty(invoice.Notes), nullIfEmpty(invoice.Terms),
		nullIfEmpty(invoice.ClientID), nullIfEmpty(invoice.ProjectID),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s", domain.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update overwrites the invoice header.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_number = $2, issue_date = $3, due_date = $4, status = $5,
		    subtotal = $6, tax_rate = $7, tax_amount = $8, total = $9,
		    notes = $10, terms = $11, client_id = $12, project_id = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.IssueDate, invoice.DueDate, invoice.Status,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.Total,
		nullIfEmpty(invoice.Notes), nullIfEmpty(invoice.Terms),
		nullIfEmpty(invoice.ClientID), nullIfEmpty(invoice.ProjectID),
		invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s", domain.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete removes the header; items go with it through the cascade.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID returns an invoice header by ID, or nil when not found.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := invoiceSelect + ` WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByUser returns the user's invoices, newest issue date first.
func (r *InvoiceRepo) ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error) {
	query := invoiceSelect + ` WHERE user_id = $1 ORDER BY issue_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

// ListRecent returns the newest invoices by creation time.
func (r *InvoiceRepo) ListRecent(userID string, limit int) ([]*entity.Invoice, error) {
	query := invoiceSelect + ` WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(query, userID, limit)
}

// ListByIssuePeriod returns invoices with an issue date in [start, end] and
// a status in the given set, ordered by issue date. An empty set disables
// the status filter.
func (r *InvoiceRepo) ListByIssuePeriod(userID string, start, end time.Time, statuses []string) ([]*entity.Invoice, error) {
	query := invoiceSelect + ` WHERE user_id = $1 AND issue_date >= $2 AND issue_date <= $3`
	args := []any{userID, start, end}
	if len(statuses) > 0 {
		query += ` AND status = ANY($4)`
		args = append(args, statuses)
	}
	query += ` ORDER BY issue_date, created_at`
	return r.list(query, args...)
}

// CountByUser returns the number of invoices the user has.
func (r *InvoiceRepo) CountByUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM invoices WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// CreateItem persists one invoice line.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.Description,
		item.Quantity, item.UnitPrice, item.Amount, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetItemsByInvoiceID returns the invoice's lines in display order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, amount, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Amount, &it.Position); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItemsByInvoiceID removes all lines of an invoice. Used together with
// CreateItem to replace the set on every save.
func (r *InvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) list(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

const invoiceSelect = `
	SELECT id, user_id, invoice_number, issue_date, due_date, status,
	       subtotal, tax_rate, tax_amount, total,
	       notes, terms, client_id, project_id, created_at, updated_at
	FROM invoices`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var notes, terms, clientID, projectID *string
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.InvoiceNumber, &inv.IssueDate, &inv.DueDate, &inv.Status,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total,
		&notes, &terms, &clientID, &projectID,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Notes = derefStr(notes)
	inv.Terms = derefStr(terms)
	inv.ClientID = derefStr(clientID)
	inv.ProjectID = derefStr(projectID)
	return &inv, nil
}
