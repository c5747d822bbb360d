package entity

import "time"

// Organization is the issuer identity printed on documents. One record per
// user, created on first save.
type Organization struct {
	ID         string
	UserID     string
	Name       string
	Address    string
	City       string
	Country    string
	PostalCode string
	Phone      string
	Email      string
	Website    string
	TaxID      string // BTW number
	LogoURL    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
