package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

const recentInvoiceLimit = 5

// DashboardUseCase assembles the overview figures shown after login.
type DashboardUseCase struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

func NewDashboardUseCase(clientRepo repository.ClientRepository, projectRepo repository.ProjectRepository, invoiceRepo repository.InvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// Overview returns entity counts, revenue from paid invoices and the five
// most recent invoices.
func (uc *DashboardUseCase) Overview(userID string) (*dto.DashboardResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	clientCount, err := uc.clientRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	projectCount, err := uc.projectRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	invoiceCount, err := uc.invoiceRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	paid, err := uc.invoiceRepo.ListByIssuePeriod(userID, time.Time{}, uc.now(), []string{entity.InvoiceStatusPaid})
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, inv := range paid {
		revenue = revenue.Add(inv.Total)
	}

	recent, err := uc.invoiceRepo.ListRecent(userID, recentInvoiceLimit)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.InvoiceResponse, 0, len(recent))
	for _, inv := range recent {
		rows = append(rows, *uc.toInvoiceRow(inv))
	}

	return &dto.DashboardResponse{
		ClientCount:    clientCount,
		ProjectCount:   projectCount,
		InvoiceCount:   invoiceCount,
		TotalRevenue:   revenue,
		RecentInvoices: rows,
	}, nil
}

func (uc *DashboardUseCase) toInvoiceRow(inv *entity.Invoice) *dto.InvoiceResponse {
	row := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		Status:        inv.Status,
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
	}
	if inv.ClientID != "" {
		if client, err := uc.clientRepo.GetByID(inv.ClientID); err == nil && client != nil {
			row.ClientName = client.Name
		}
	}
	return row
}
