package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/dto"
)

// listInvoicesCap bounds list results defensively; the API exposes no
// pagination, matching the original surface.
const listInvoicesCap = 500

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	staffRepo   portsrepo.StaffReader
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, staffRepo portsrepo.StaffReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		staffRepo:   staffRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	// Inactive and unknown staff are indistinguishable here; both fail the
	// active-only lookup.
	staff, err := s.staffRepo.FindStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("staff not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve staff for invoice: %w", err)
	}

	address, ok := staff.AddressFor(currency)
	if !ok {
		return nil, fmt.Errorf("staff does not have a %s address: %w", currency, apperrors.ErrValidation)
	}

	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		StaffID:        req.StaffID,
		ClientID:       req.ClientID,
		Amount:         req.Amount,
		Currency:       currency,
		Description:    req.Description,
		Status:         domain.InvoiceStatusPending,
		PaymentAddress: address,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string, viewer domain.Identity) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	// Clients only see their own invoices; a scope mismatch is
	// indistinguishable from absence.
	if viewer.Role == domain.RoleClient && invoice.ClientID != viewer.SubjectID {
		return nil, apperrors.ErrNotFound
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, viewer domain.Identity, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	filter := domain.InvoiceFilter{Status: status}
	switch viewer.Role {
	case domain.RoleClient:
		filter.ClientID = viewer.SubjectID
	case domain.RoleStaff:
		filter.StaffID = viewer.SubjectID
	case domain.RoleAdmin:
		// admins see everything
	}

	invoices, err := s.invoiceRepo.FindInvoices(ctx, filter, listInvoicesCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
