package services

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

// ReceiptSvcFacade renders PDF receipts for paid invoices.
type ReceiptSvcFacade interface {
	// RenderReceipt produces a PDF receipt for a paid invoice visible to the
	// viewer. It returns apperrors.ErrNotFound when the invoice is absent,
	// out of the viewer's scope, or not yet paid.
	RenderReceipt(ctx context.Context, invoiceID string, viewer domain.Identity) ([]byte, error)
}
