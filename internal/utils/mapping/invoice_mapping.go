package mapping

import (
	"fmt"
	"time"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/cpsys/crypto_payment_system/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice, serializing
// timestamps to ISO-8601 text for storage.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:      d.InvoiceID,
		StaffID:        d.StaffID,
		ClientID:       d.ClientID,
		Amount:         d.Amount,
		Currency:       string(d.Currency),
		Description:    d.Description,
		Status:         string(d.Status),
		PaymentAddress: d.PaymentAddress,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.Settlement != nil {
		tx := d.Settlement.TxHash
		paidAt := d.Settlement.PaidAt.UTC().Format(time.RFC3339Nano)
		m.TxHash = &tx
		m.PaidAt = &paidAt
	}
	return m
}

// ToDomainInvoice converts a model Invoice to a domain Invoice, parsing the
// stored ISO-8601 timestamps back into time.Time values. It fails when a row
// violates the settlement invariant (tx hash and paid_at must come together).
func ToDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, m.CreatedAt)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invalid created_at %q on invoice %s: %w", m.CreatedAt, m.InvoiceID, err)
	}

	d := domain.Invoice{
		InvoiceID:      m.InvoiceID,
		StaffID:        m.StaffID,
		ClientID:       m.ClientID,
		Amount:         m.Amount,
		Currency:       domain.Currency(m.Currency),
		Description:    m.Description,
		Status:         domain.InvoiceStatus(m.Status),
		PaymentAddress: m.PaymentAddress,
		CreatedAt:      createdAt,
	}

	if (m.TxHash == nil) != (m.PaidAt == nil) {
		return domain.Invoice{}, fmt.Errorf("invoice %s has inconsistent settlement fields", m.InvoiceID)
	}
	if m.TxHash != nil {
		paidAt, err := time.Parse(time.RFC3339Nano, *m.PaidAt)
		if err != nil {
			return domain.Invoice{}, fmt.Errorf("invalid paid_at %q on invoice %s: %w", *m.PaidAt, m.InvoiceID, err)
		}
		d.Settlement = &domain.Settlement{TxHash: *m.TxHash, PaidAt: paidAt}
	}
	return d, nil
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices.
func ToDomainInvoiceSlice(ms []models.Invoice) ([]domain.Invoice, error) {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		d, err := ToDomainInvoice(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
