package usecase_test

import (
	"bytes"
	"io"
	"time"

	"github.com/goitom/finance-api/internal/domain/entity"
)

// In-memory repositories for use case tests. They copy on read and write so
// tests cannot mutate stored state through returned pointers.

type memSettingsRepo struct {
	byUser map[string]*entity.Settings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{byUser: map[string]*entity.Settings{}}
}

func (r *memSettingsRepo) GetByUser(userID string) (*entity.Settings, error) {
	s, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSettingsRepo) Create(s *entity.Settings) error {
	cp := *s
	r.byUser[s.UserID] = &cp
	return nil
}

func (r *memSettingsRepo) Update(s *entity.Settings) error {
	cp := *s
	r.byUser[s.UserID] = &cp
	return nil
}

type memOrgRepo struct {
	byUser map[string]*entity.Organization
}

func newMemOrgRepo() *memOrgRepo {
	return &memOrgRepo{byUser: map[string]*entity.Organization{}}
}

func (r *memOrgRepo) GetByUser(userID string) (*entity.Organization, error) {
	o, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrgRepo) Create(o *entity.Organization) error {
	cp := *o
	r.byUser[o.UserID] = &cp
	return nil
}

func (r *memOrgRepo) Update(o *entity.Organization) error {
	cp := *o
	r.byUser[o.UserID] = &cp
	return nil
}

type memLogoStore struct {
	saved map[string][]byte
}

func newMemLogoStore() *memLogoStore {
	return &memLogoStore{saved: map[string][]byte{}}
}

func (s *memLogoStore) SaveLogo(userID, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", err
	}
	url := "http://localhost:8080/uploads/" + userID + "/" + filename
	s.saved[url] = buf.Bytes()
	return url, nil
}

type memVATReportRepo struct {
	byID map[string]*entity.VATReport
}

func newMemVATReportRepo() *memVATReportRepo {
	return &memVATReportRepo{byID: map[string]*entity.VATReport{}}
}

func (r *memVATReportRepo) Create(report *entity.VATReport) error {
	cp := *report
	r.byID[report.ID] = &cp
	return nil
}

func (r *memVATReportRepo) GetByID(id string) (*entity.VATReport, error) {
	report, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *report
	return &cp, nil
}

func (r *memVATReportRepo) ListByUser(userID string, limit, offset int) ([]*entity.VATReport, error) {
	var list []*entity.VATReport
	for _, report := range r.byID {
		if report.UserID == userID {
			cp := *report
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memVATReportRepo) UpdateStatus(id, status string) error {
	if report, ok := r.byID[id]; ok {
		report.Status = status
	}
	return nil
}

func (r *memVATReportRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memInvoiceRepo struct {
	byID  map[string]*entity.Invoice
	items map[string][]*entity.InvoiceItem
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{
		byID:  map[string]*entity.Invoice{},
		items: map[string][]*entity.InvoiceItem{},
	}
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Delete(id string) error {
	delete(r.byID, id)
	delete(r.items, id)
	return nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoiceRepo) ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.byID {
		if inv.UserID == userID {
			cp := *inv
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memInvoiceRepo) ListRecent(userID string, limit int) ([]*entity.Invoice, error) {
	list, _ := r.ListByUser(userID, limit, 0)
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *memInvoiceRepo) ListByIssuePeriod(userID string, start, end time.Time, statuses []string) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.byID {
		if inv.UserID != userID || inv.IssueDate.Before(start) || inv.IssueDate.After(end) {
			continue
		}
		if len(statuses) > 0 && !contains(statuses, inv.Status) {
			continue
		}
		cp := *inv
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memInvoiceRepo) CountByUser(userID string) (int, error) {
	list, _ := r.ListByUser(userID, 0, 0)
	return len(list), nil
}

func (r *memInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *memInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *memInvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	delete(r.items, invoiceID)
	return nil
}

type memClientRepo struct {
	byID map[string]*entity.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{byID: map[string]*entity.Client{}}
}

func (r *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) ListByUser(userID string, limit, offset int) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.byID {
		if c.UserID == userID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memClientRepo) CountByUser(userID string) (int, error) {
	list, _ := r.ListByUser(userID, 0, 0)
	return len(list), nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memProjectRepo struct {
	byID map[string]*entity.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{byID: map[string]*entity.Project{}}
}

func (r *memProjectRepo) Create(p *entity.Project) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) ListByUser(userID string, limit, offset int) ([]*entity.Project, error) {
	var list []*entity.Project
	for _, p := range r.byID {
		if p.UserID == userID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memProjectRepo) CountByUser(userID string) (int, error) {
	list, _ := r.ListByUser(userID, 0, 0)
	return len(list), nil
}

func (r *memProjectRepo) Update(p *entity.Project) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memFeedbackRepo struct {
	byID map[string]*entity.Feedback
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{byID: map[string]*entity.Feedback{}}
}

func (r *memFeedbackRepo) Create(f *entity.Feedback) error {
	cp := *f
	r.byID[f.ID] = &cp
	return nil
}

func (r *memFeedbackRepo) ListByUser(userID string, limit, offset int) ([]*entity.Feedback, error) {
	var list []*entity.Feedback
	for _, f := range r.byID {
		if f.UserID == userID {
			cp := *f
			list = append(list, &cp)
		}
	}
	return list, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
