package billing_test

import (
	"context"
	"time"

	"github.com/goitom/finance-api/internal/application/billing"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

// fakeInvoiceRepo is an in-memory InvoiceRepository for use case tests.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{},
		items:    map[string][]*entity.InvoiceItem{},
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			cp := *inv
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeInvoiceRepo) ListRecent(userID string, limit int) ([]*entity.Invoice, error) {
	return r.ListByUser(userID, limit, 0)
}

func (r *fakeInvoiceRepo) ListByIssuePeriod(userID string, start, end time.Time, statuses []string) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.UserID != userID || inv.IssueDate.Before(start) || inv.IssueDate.After(end) {
			continue
		}
		if len(statuses) > 0 {
			ok := false
			for _, s := range statuses {
				if inv.Status == s {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}
		cp := *inv
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeInvoiceRepo) CountByUser(userID string) (int, error) {
	n := 0
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	delete(r.items, invoiceID)
	return nil
}

// fakeClientRepo is an in-memory ClientRepository.
type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) ListByUser(userID string, limit, offset int) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.clients {
		if c.UserID == userID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeClientRepo) CountByUser(userID string) (int, error) {
	list, _ := r.ListByUser(userID, 0, 0)
	return len(list), nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

// fakeTxRunner runs the callback directly against the shared fake repo; the
// tests do not exercise rollback.
type fakeTxRunner struct {
	repo *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunInvoice(_ context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	return fn(r.repo)
}

var _ billing.TxRunner = (*fakeTxRunner)(nil)
