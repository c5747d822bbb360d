package repository

import "github.com/goitom/finance-api/internal/domain/entity"

// VATReportRepository is the persistence port for VAT report snapshots.
// Reports are written once at creation; only status and notes may change
// afterwards, never the aggregated totals.
type VATReportRepository interface {
	Create(report *entity.VATReport) error
	GetByID(id string) (*entity.VATReport, error)
	ListByUser(userID string, limit, offset int) ([]*entity.VATReport, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
