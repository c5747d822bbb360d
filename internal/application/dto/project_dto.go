package dto

import "github.com/shopspring/decimal"

// ProjectRequest body for creating or updating a project.
// Dates are "2006-01-02" strings; empty means unset.
type ProjectRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status,omitempty"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	ClientID    string           `json:"client_id,omitempty"`
}

// ProjectResponse project in responses.
type ProjectResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	ClientID    string           `json:"client_id,omitempty"`
}

// ProjectListResponse paged project listing.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
