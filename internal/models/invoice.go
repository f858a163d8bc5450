package models

import "github.com/shopspring/decimal"

// Invoice represents an invoice row in the invoices table.
// created_at and paid_at are stored as ISO-8601 (RFC 3339) text columns and
// parsed into structured timestamps by the mapping layer on read.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	StaffID        string          `db:"staff_id"`
	ClientID       string          `db:"client_id"`
	Amount         decimal.Decimal `db:"amount"`
	Currency       string          `db:"currency"`
	Description    string          `db:"description"`
	Status         string          `db:"status"`
	PaymentAddress string          `db:"payment_address"`
	TxHash         *string         `db:"tx_hash"`
	CreatedAt      string          `db:"created_at"`
	PaidAt         *string         `db:"paid_at"`
}
