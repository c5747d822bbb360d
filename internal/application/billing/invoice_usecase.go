package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	domainbilling "github.com/goitom/finance-api/internal/domain/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase implements the invoice record lifecycle: create, update,
// delete and reads. Saves recompute all derived totals from the submitted
// items and run header + items inside one transaction. Updates replace the
// full item set (delete-then-reinsert); item IDs are never stable across
// edits. There is no optimistic locking: concurrent edits are last-write-wins.
type InvoiceUseCase struct {
	tx          TxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceUseCase wires the lifecycle with its ports.
func NewInvoiceUseCase(tx TxRunner, invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{tx: tx, invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

// Create persists a new invoice with its items. Returns the stored invoice
// with server-computed totals.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	inv, items, err := uc.buildInvoice(userID, in)
	if err != nil {
		return nil, err
	}
	inv.ID = uuid.New().String()
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	err = uc.tx.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Create(inv); err != nil {
			return err
		}
		for _, it := range items {
			it.InvoiceID = inv.ID
			if err := repo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return toInvoiceResponse(inv, items, ""), nil
}

// Update persists new header values, deletes all previously stored items and
// inserts the submitted set, in one transaction.
func (uc *InvoiceUseCase) Update(ctx context.Context, userID, invoiceID string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.ownedInvoice(userID, invoiceID)
	if err != nil {
		return nil, err
	}

	inv, items, err := uc.buildInvoice(userID, in)
	if err != nil {
		return nil, err
	}
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now()

	err = uc.tx.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Update(inv); err != nil {
			return err
		}
		if err := repo.DeleteItemsByInvoiceID(inv.ID); err != nil {
			return err
		}
		for _, it := range items {
			it.InvoiceID = inv.ID
			if err := repo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return toInvoiceResponse(inv, items, ""), nil
}

// Delete removes the invoice header. Items follow through the schema's
// ON DELETE CASCADE.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, invoiceID string) error {
	if _, err := uc.ownedInvoice(userID, invoiceID); err != nil {
		return err
	}
	if err := uc.invoiceRepo.Delete(invoiceID); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// Get returns one invoice with its items and resolved client name.
func (uc *InvoiceUseCase) Get(ctx context.Context, userID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.ownedInvoice(userID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	return toInvoiceResponse(inv, items, uc.clientName(inv.ClientID)), nil
}

// List returns the user's invoices, newest first, without items.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, nil, uc.clientName(inv.ClientID)))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// buildInvoice validates the request and derives items and totals.
func (uc *InvoiceUseCase) buildInvoice(userID string, in dto.SaveInvoiceRequest) (*entity.Invoice, []*entity.InvoiceItem, error) {
	if in.InvoiceNumber == "" {
		return nil, nil, fmt.Errorf("%w: invoice number is required", domain.ErrInvalidInput)
	}
	issue, err := time.Parse(dateLayout, in.IssueDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: issue date: %v", domain.ErrInvalidInput, err)
	}
	due, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: due date: %v", domain.ErrInvalidInput, err)
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}

	items := make([]*entity.InvoiceItem, 0, len(in.Items))
	forTotals := make([]entity.InvoiceItem, 0, len(in.Items))
	for i, it := range in.Items {
		item := &entity.InvoiceItem{
			ID:          uuid.New().String(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      domainbilling.LineAmount(it.Quantity, it.UnitPrice),
			Position:    i,
		}
		items = append(items, item)
		forTotals = append(forTotals, *item)
	}
	totals := domainbilling.ComputeTotals(forTotals, in.TaxRate)

	inv := &entity.Invoice{
		UserID:        userID,
		InvoiceNumber: in.InvoiceNumber,
		IssueDate:     issue,
		DueDate:       due,
		Status:        status,
		Subtotal:      totals.Subtotal,
		TaxRate:       in.TaxRate,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Notes:         in.Notes,
		Terms:         in.Terms,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
	}
	return inv, items, nil
}

// ownedInvoice loads an invoice and checks it belongs to the user.
func (uc *InvoiceUseCase) ownedInvoice(userID, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

func (uc *InvoiceUseCase) clientName(clientID string) string {
	if clientID == "" {
		return ""
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return ""
	}
	return client.Name
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem, clientName string) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		Status:        inv.Status,
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		ClientID:      inv.ClientID,
		ClientName:    clientName,
		ProjectID:     inv.ProjectID,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return resp
}
