package entity

import "time"

// Client is a billable counterparty. Referenced by invoices and projects via
// an optional foreign key; deleting a client does not cascade.
type Client struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	Country    string
	PostalCode string
	TaxID      string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
