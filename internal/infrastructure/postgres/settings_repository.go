package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository. One row per user, enforced by
// a unique constraint on user_id.
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByUser returns the user's settings, or nil when none exist yet.
func (r *SettingsRepo) GetByUser(userID string) (*entity.Settings, error) {
	query := `
		SELECT id, user_id, currency, tax_rate, invoice_prefix, invoice_terms, invoice_notes, created_at, updated_at
		FROM settings WHERE user_id = $1`
	var s entity.Settings
	var terms, notes *string
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.ID, &s.UserID, &s.Currency, &s.TaxRate, &s.InvoicePrefix,
		&terms, &notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s.InvoiceTerms = derefStr(terms)
	s.InvoiceNotes = derefStr(notes)
	return &s, nil
}

// Create persists the settings row.
func (r *SettingsRepo) Create(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, user_id, currency, tax_rate, invoice_prefix, invoice_terms, invoice_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.UserID, settings.Currency, settings.TaxRate, settings.InvoicePrefix,
		nullIfEmpty(settings.InvoiceTerms), nullIfEmpty(settings.InvoiceNotes),
		settings.CreatedAt, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Update overwrites the settings row.
func (r *SettingsRepo) Update(settings *entity.Settings) error {
	query := `
		UPDATE settings
		SET currency = $2, tax_rate = $3, invoice_prefix = $4,
		    invoice_terms = $5, invoice_notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.Currency, settings.TaxRate, settings.InvoicePrefix,
		nullIfEmpty(settings.InvoiceTerms), nullIfEmpty(settings.InvoiceNotes),
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
