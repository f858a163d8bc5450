package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/dto"
	"github.com/cpsys/crypto_payment_system/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	reconciler     portssvc.PaymentReconcilerSvc
	receiptService portssvc.ReceiptSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, rec portssvc.PaymentReconcilerSvc, rs portssvc.ReceiptSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		reconciler:     rec,
		receiptService: rs,
	}
}

// registerInvoiceRoutes registers all invoice-related routes. Creation is
// admin only; reads are scoped inside the service by the caller's identity.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, reconciler portssvc.PaymentReconcilerSvc, receiptService portssvc.ReceiptSvcFacade) {
	h := newInvoiceHandler(invoiceService, reconciler, receiptService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/:id/check-payment", h.checkPayment)
		invoices.GET("/:id/receipt", h.downloadReceipt)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a pending invoice billed to a client, denominated in the staff member's payout address currency. Admin only.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input, unsupported currency, or staff member has no address for the currency"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("currency", string(invoice.Currency)),
	)
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices visible to the caller, newest first. Clients see their own invoices, staff their issued ones, admins everything.
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, paid)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	var status domain.InvoiceStatus
	if params.Status != "" {
		switch domain.InvoiceStatus(params.Status) {
		case domain.InvoiceStatusPending, domain.InvoiceStatusPaid:
			status = domain.InvoiceStatus(params.Status)
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown status %q", params.Status)})
			return
		}
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), identity, status)
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves one invoice. Clients can only retrieve their own invoices.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// checkPayment godoc
// @Summary Check an invoice for payment
// @Description Runs the on-demand payment check against the chain oracle. An unreachable oracle reports the invoice as still pending rather than failing.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.CheckPaymentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/check-payment [post]
func (h *invoiceHandler) checkPayment(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoiceID := c.Param("id")

	// Visibility check first so clients cannot probe foreign invoice IDs.
	if _, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID, identity); err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}

	result, err := h.reconciler.CheckInvoicePayment(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, err, "Failed to check payment")
		return
	}

	resp := dto.CheckPaymentResponse{
		Status: string(result.Status),
		TxHash: result.TxHash,
	}
	switch {
	case result.AlreadyPaid:
		resp.Message = "Invoice already paid"
	case result.Status == domain.InvoiceStatusPaid:
		resp.Message = "Payment detected"
	default:
		resp.Message = "No payment detected yet"
	}

	c.JSON(http.StatusOK, resp)
}

// downloadReceipt godoc
// @Summary Download a PDF receipt
// @Description Renders a PDF receipt for a paid invoice. Unpaid invoices return 404.
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Invoice absent, out of scope, or not yet paid"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/receipt [get]
func (h *invoiceHandler) downloadReceipt(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoiceID := c.Param("id")
	pdfBytes, err := h.receiptService.RenderReceipt(c.Request.Context(), invoiceID, identity)
	if err != nil {
		respondError(c, err, "Failed to render receipt")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", invoiceID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
