package repository

import (
	"time"

	"github.com/goitom/finance-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoice headers and items.
//
// Items are a value-object collection owned by the invoice:
// DeleteItemsByInvoiceID + CreateItem implement the delete-then-reinsert
// policy on every update. Deleting a header removes its items through the
// schema's ON DELETE CASCADE.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error)
	// ListRecent returns the newest invoices by creation time.
	ListRecent(userID string, limit int) ([]*entity.Invoice, error)
	// ListByIssuePeriod returns invoices whose issue date falls within
	// [start, end] and whose status is in the given set, ordered by issue
	// date. An empty status set means no status filtering.
	ListByIssuePeriod(userID string, start, end time.Time, statuses []string) ([]*entity.Invoice, error)
	CountByUser(userID string) (int, error)

	CreateItem(item *entity.InvoiceItem) error
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	DeleteItemsByInvoiceID(invoiceID string) error
}
