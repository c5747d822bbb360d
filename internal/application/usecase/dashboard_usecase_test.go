package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goitom/finance-api/internal/application/usecase"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
)

func TestOverviewCountsAndRevenue(t *testing.T) {
	clientRepo := newMemClientRepo()
	projectRepo := newMemProjectRepo()
	invoiceRepo := newMemInvoiceRepo()
	uc := usecase.NewDashboardUseCase(clientRepo, projectRepo, invoiceRepo)

	require.NoError(t, clientRepo.Create(&entity.Client{ID: "client-1", UserID: "user-1", Name: "Bakkerij Jansen"}))
	require.NoError(t, clientRepo.Create(&entity.Client{ID: "client-2", UserID: "user-2", Name: "Iemand anders"}))
	require.NoError(t, projectRepo.Create(&entity.Project{ID: "project-1", UserID: "user-1", Name: "Website"}))

	seedInvoice(t, invoiceRepo, "user-1", "INV-001", entity.InvoiceStatusPaid, thisMonth(), 121, 21)
	seedInvoice(t, invoiceRepo, "user-1", "INV-002", entity.InvoiceStatusPaid, thisMonth().AddDate(-1, 0, 0), 242, 42)
	// Unpaid invoices count toward the invoice total but not revenue.
	seedInvoice(t, invoiceRepo, "user-1", "INV-003", entity.InvoiceStatusSent, thisMonth(), 605, 105)

	got, err := uc.Overview("user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, got.ClientCount)
	assert.Equal(t, 1, got.ProjectCount)
	assert.Equal(t, 3, got.InvoiceCount)
	assert.True(t, got.TotalRevenue.Equal(decimal.NewFromInt(363)), "revenue = %s", got.TotalRevenue)
	assert.NotEmpty(t, got.RecentInvoices)
}

func TestOverviewEmptyAccount(t *testing.T) {
	uc := usecase.NewDashboardUseCase(newMemClientRepo(), newMemProjectRepo(), newMemInvoiceRepo())

	got, err := uc.Overview("user-1")
	require.NoError(t, err)

	assert.Zero(t, got.ClientCount)
	assert.Zero(t, got.InvoiceCount)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.Empty(t, got.RecentInvoices)
}

func TestOverviewRequiresUser(t *testing.T) {
	uc := usecase.NewDashboardUseCase(newMemClientRepo(), newMemProjectRepo(), newMemInvoiceRepo())

	_, err := uc.Overview("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
