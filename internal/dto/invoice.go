package dto

import (
	"time"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	StaffID     string          `json:"staff_id" binding:"required"`
	ClientID    string          `json:"client_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Status string `form:"status"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string          `json:"id"`
	StaffID        string          `json:"staff_id"`
	ClientID       string          `json:"client_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	PaymentAddress string          `json:"payment_address"`
	TxHash         *string         `json:"tx_hash,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// CheckPaymentResponse is returned by the on-demand payment check.
type CheckPaymentResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	TxHash  *string `json:"tx_hash,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		StaffID:        inv.StaffID,
		ClientID:       inv.ClientID,
		Amount:         inv.Amount,
		Currency:       string(inv.Currency),
		Description:    inv.Description,
		Status:         string(inv.Status),
		PaymentAddress: inv.PaymentAddress,
		CreatedAt:      inv.CreatedAt,
	}
	if inv.Settlement != nil {
		tx := inv.Settlement.TxHash
		paidAt := inv.Settlement.PaidAt
		resp.TxHash = &tx
		resp.PaidAt = &paidAt
	}
	return resp
}

// ToListInvoicesResponse converts a slice of domain.Invoice to ListInvoicesResponse
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return ListInvoicesResponse{Invoices: res}
}
