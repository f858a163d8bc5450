package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the invoice state machine: pending is the only initial
// state, paid is terminal, and the only legal transition is pending -> paid.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Settlement carries the payment evidence for a paid invoice. It exists as a
// single value so that tx hash and paid timestamp are either both present or
// both absent; a pending invoice simply has no Settlement.
type Settlement struct {
	TxHash string    `json:"tx_hash"`
	PaidAt time.Time `json:"paid_at"`
}

// Invoice represents a bill from one staff member to one client in one
// currency. Amount, currency and payment address are immutable after
// creation; only the reconciliation paths move it to paid.
type Invoice struct {
	InvoiceID      string          `json:"id"`
	StaffID        string          `json:"staff_id"`
	ClientID       string          `json:"client_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       Currency        `json:"currency"`
	Description    string          `json:"description"`
	Status         InvoiceStatus   `json:"status"`
	PaymentAddress string          `json:"payment_address"`
	Settlement     *Settlement     `json:"settlement,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// IsPaid reports whether the invoice has reached its terminal state.
func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// InvoiceFilter narrows ListInvoices results. Zero-valued fields are ignored.
type InvoiceFilter struct {
	ClientID string
	StaffID  string
	Status   InvoiceStatus
}
