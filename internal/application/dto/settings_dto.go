package dto

import "github.com/shopspring/decimal"

// SettingsRequest body for PUT /api/settings.
type SettingsRequest struct {
	Currency      string          `json:"currency,omitempty"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	InvoicePrefix string          `json:"invoice_prefix,omitempty"`
	InvoiceTerms  string          `json:"invoice_terms,omitempty"`
	InvoiceNotes  string          `json:"invoice_notes,omitempty"`
}

// SettingsResponse per-user settings.
type SettingsResponse struct {
	Currency      string          `json:"currency"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	InvoicePrefix string          `json:"invoice_prefix"`
	InvoiceTerms  string          `json:"invoice_terms,omitempty"`
	InvoiceNotes  string          `json:"invoice_notes,omitempty"`
}

// OrganizationRequest body for PUT /api/settings/organization.
type OrganizationRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Website    string `json:"website,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
}

// OrganizationResponse the issuer identity printed on documents.
type OrganizationResponse struct {
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Website    string `json:"website,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
}
