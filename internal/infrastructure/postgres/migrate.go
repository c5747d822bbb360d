package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		address TEXT,
		city TEXT,
		country TEXT,
		postal_code TEXT,
		tax_id TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active', 'completed', 'on_hold', 'cancelled')),
		start_date DATE,
		end_date DATE,
		budget NUMERIC(14,2),
		client_id UUID REFERENCES clients(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		invoice_number TEXT NOT NULL,
		issue_date DATE NOT NULL,
		due_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft' CHECK(status IN ('draft', 'sent', 'paid', 'overdue', 'cancelled')),
		subtotal NUMERIC(14,4) NOT NULL DEFAULT 0,
		tax_rate NUMERIC(6,3) NOT NULL DEFAULT 0,
		tax_amount NUMERIC(14,4) NOT NULL DEFAULT 0,
		total NUMERIC(14,4) NOT NULL DEFAULT 0,
		notes TEXT,
		terms TEXT,
		client_id UUID REFERENCES clients(id) ON DELETE SET NULL,
		project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, invoice_number)
	)`,

	// Items are replaced wholesale on every invoice save; the cascade keeps
	// orphan rows from surviving a header delete.
	`CREATE TABLE IF NOT EXISTS invoice_items (
		id UUID PRIMARY KEY,
		invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		quantity NUMERIC(14,4) NOT NULL DEFAULT 0,
		unit_price NUMERIC(14,4) NOT NULL DEFAULT 0,
		amount NUMERIC(18,8) NOT NULL DEFAULT 0,
		position INT NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT '',
		address TEXT,
		city TEXT,
		country TEXT,
		postal_code TEXT,
		phone TEXT,
		email TEXT,
		website TEXT,
		tax_id TEXT,
		logo_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		currency TEXT NOT NULL DEFAULT 'EUR',
		tax_rate NUMERIC(6,3) NOT NULL DEFAULT 21,
		invoice_prefix TEXT NOT NULL DEFAULT 'INV',
		invoice_terms TEXT,
		invoice_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS vat_reports (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		total_sales NUMERIC(14,4) NOT NULL DEFAULT 0,
		total_vat NUMERIC(14,4) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft' CHECK(status IN ('draft', 'submitted', 'approved')),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type TEXT NOT NULL DEFAULT 'general' CHECK(type IN ('general', 'bug', 'feature', 'improvement')),
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new' CHECK(status IN ('new', 'read', 'resolved', 'archived')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_clients_user ON clients(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_user ON invoices(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_issue_date ON invoices(user_id, issue_date)`,
	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items(invoice_id)`,
	`CREATE INDEX IF NOT EXISTS idx_vat_reports_user ON vat_reports(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_user ON feedback(user_id)`,
}
