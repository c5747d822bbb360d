package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.VATReportRepository = (*VATReportRepo)(nil)

// VATReportRepo implements VATReportRepository. Totals are written once at
// insert; updates touch only status and the timestamp.
type VATReportRepo struct {
	q Querier
}

func NewVATReportRepository(q Querier) *VATReportRepo {
	return &VATReportRepo{q: q}
}

// Create persists the report snapshot.
func (r *VATReportRepo) Create(report *entity.VATReport) error {
	query := `
		INSERT INTO vat_reports (id, user_id, period_start, period_end, total_sales, total_vat, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.UserID, report.PeriodStart, report.PeriodEnd,
		report.TotalSales, report.TotalVAT, report.Status, nullIfEmpty(report.Notes),
		report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vat report: %w", err)
	}
	return nil
}

// GetByID returns a report by ID, or nil when not found.
func (r *VATReportRepo) GetByID(id string) (*entity.VATReport, error) {
	query := vatReportSelect + ` WHERE id = $1`
	report, err := scanVATReport(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vat report: %w", err)
	}
	return report, nil
}

// ListByUser returns the user's reports, newest period first.
func (r *VATReportRepo) ListByUser(userID string, limit, offset int) ([]*entity.VATReport, error) {
	query := vatReportSelect + ` WHERE user_id = $1 ORDER BY period_start DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vat reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.VATReport
	for rows.Next() {
		report, err := scanVATReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vat report: %w", err)
		}
		list = append(list, report)
	}
	return list, rows.Err()
}

// UpdateStatus moves the report to a new status.
func (r *VATReportRepo) UpdateStatus(id, status string) error {
	query := `UPDATE vat_reports SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update vat report status: %w", err)
	}
	return nil
}

// Delete removes the report snapshot.
func (r *VATReportRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vat_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vat report: %w", err)
	}
	return nil
}

const vatReportSelect = `
	SELECT id, user_id, period_start, period_end, total_sales, total_vat, status, notes, created_at, updated_at
	FROM vat_reports`

func scanVATReport(row pgx.Row) (*entity.VATReport, error) {
	var report entity.VATReport
	var notes *string
	err := row.Scan(
		&report.ID, &report.UserID, &report.PeriodStart, &report.PeriodEnd,
		&report.TotalSales, &report.TotalVAT, &report.Status, &notes,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.Notes = derefStr(notes)
	return &report, nil
}
