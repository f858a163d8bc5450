package services

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/cpsys/crypto_payment_system/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data, scoped to the
// calling identity: clients only ever see their own invoices, staff their
// issued ones, admins everything.
type InvoiceReaderSvc interface {
	// GetInvoice retrieves one invoice visible to the viewer.
	GetInvoice(ctx context.Context, invoiceID string, viewer domain.Identity) (*domain.Invoice, error)

	// ListInvoices retrieves the viewer's invoices, optionally filtered by
	// status, newest first.
	ListInvoices(ctx context.Context, viewer domain.Identity, status domain.InvoiceStatus) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice resolves the staff member's payout address for the
	// requested currency and persists a new pending invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
