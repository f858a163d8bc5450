package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
)

type receiptService struct {
	invoiceRepo portsrepo.InvoiceReader
	staffRepo   portsrepo.StaffReader
	userRepo    portsrepo.UserReader
}

// NewReceiptService creates the receipt rendering service.
func NewReceiptService(invoiceRepo portsrepo.InvoiceReader, staffRepo portsrepo.StaffReader, userRepo portsrepo.UserReader) portssvc.ReceiptSvcFacade {
	return &receiptService{
		invoiceRepo: invoiceRepo,
		staffRepo:   staffRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// RenderReceipt renders a PDF receipt for a paid invoice. Unpaid, absent and
// out-of-scope invoices all surface as not found.
func (s *receiptService) RenderReceipt(ctx context.Context, invoiceID string, viewer domain.Identity) ([]byte, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice for receipt: %w", err)
	}
	if viewer.Role == domain.RoleClient && invoice.ClientID != viewer.SubjectID {
		return nil, apperrors.ErrNotFound
	}
	if !invoice.IsPaid() {
		return nil, fmt.Errorf("invoice not yet paid: %w", apperrors.ErrNotFound)
	}

	// Names are decoration on the receipt; a missing party is rendered as
	// N/A rather than failing the download.
	staffName := "N/A"
	if staff, err := s.staffRepo.FindStaffByID(ctx, invoice.StaffID); err == nil {
		staffName = staff.Name
	}
	clientName := "N/A"
	if client, err := s.userRepo.FindUserByID(ctx, invoice.ClientID); err == nil {
		clientName = client.FullName
	}

	return renderReceiptPDF(invoice, staffName, clientName)
}

func renderReceiptPDF(invoice *domain.Invoice, staffName, clientName string) ([]byte, error) {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(1, 1)
	pdf.CellFormat(0, 0.4, "PAYMENT RECEIPT", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	y := 1.5
	line := func(text string) {
		pdf.SetXY(1, y)
		pdf.CellFormat(0, 0.25, text, "", 1, "L", false, 0, "")
		y += 0.3
	}

	line(fmt.Sprintf("Invoice ID: %s", invoice.InvoiceID))
	line(fmt.Sprintf("Date: %s", invoice.Settlement.PaidAt.UTC().Format(time.RFC3339)))
	line(fmt.Sprintf("Client: %s", clientName))
	line(fmt.Sprintf("Staff: %s", staffName))
	line(fmt.Sprintf("Amount: %s %s", invoice.Amount.String(), invoice.Currency))
	line(fmt.Sprintf("Payment Address: %s", invoice.PaymentAddress))
	line(fmt.Sprintf("Transaction Hash: %s", invoice.Settlement.TxHash))
	line(fmt.Sprintf("Description: %s", invoice.Description))

	y += 0.2
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(1, y)
	pdf.CellFormat(0, 0.3, "Status: PAID", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
