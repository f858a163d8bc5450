package services

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

// PaymentCheckResult is the outcome of a single payment check. AlreadyPaid
// distinguishes the idempotent no-op path (the invoice was paid before this
// check ran) from a freshly detected payment.
type PaymentCheckResult struct {
	Status      domain.InvoiceStatus
	TxHash      *string
	AlreadyPaid bool
}

// PaymentReconcilerSvc drives the pending -> paid transition from both entry
// points: the synchronous on-demand check and the periodic background scan.
type PaymentReconcilerSvc interface {
	// CheckInvoicePayment runs the on-demand reconciliation for one invoice.
	// Oracle failures degrade to a pending result; store failures are
	// returned to the caller.
	CheckInvoicePayment(ctx context.Context, invoiceID string) (*PaymentCheckResult, error)

	// Start launches the periodic scan loop. It returns immediately; the
	// loop runs until Stop is called or the context is cancelled.
	Start(ctx context.Context)

	// Stop halts the scan loop without waiting for an in-flight oracle call.
	Stop()
}
