package repositories

import (
	"context"
	"time"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoices retrieves invoices matching the filter, newest first,
	// capped at limit rows.
	FindInvoices(ctx context.Context, filter domain.InvoiceFilter, limit int) ([]domain.Invoice, error)

	// CountInvoices counts invoices matching the filter.
	CountInvoices(ctx context.Context, filter domain.InvoiceFilter) (int64, error)

	// SumPaidAmountsByCurrency aggregates paid invoice amounts per currency
	// for one staff member.
	SumPaidAmountsByCurrency(ctx context.Context, staffID string) (map[domain.Currency]decimal.Decimal, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// MarkInvoicePaid transitions an invoice from pending to paid as a single
	// conditional write. It reports false when the invoice was not pending
	// (already paid or absent), so racing transitions resolve to exactly one
	// winner.
	MarkInvoicePaid(ctx context.Context, invoiceID string, txHash string, paidAt time.Time) (bool, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
