package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/platform/metrics"
)

// maxConcurrentChecks bounds the fan-out of per-invoice checks within one
// scan tick.
const maxConcurrentChecks = 4

// paymentReconciler drives the invoice state machine from both entry points:
// the synchronous on-demand check and the periodic background scan. The
// store's conditional MarkInvoicePaid is the only concurrency control; when
// two checks race, the loser observes the transition as a no-op success.
type paymentReconciler struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	oracle      portsrepo.ChainBalanceOracle
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewPaymentReconciler creates the reconciliation service. It is constructed
// once at startup and holds the store and oracle references for the process
// lifetime.
func NewPaymentReconciler(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	oracle portsrepo.ChainBalanceOracle,
	logger *slog.Logger,
	interval time.Duration,
	batchSize int,
) portssvc.PaymentReconcilerSvc {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &paymentReconciler{
		invoiceRepo: invoiceRepo,
		oracle:      oracle,
		logger:      logger.With(slog.String("component", "payment_reconciler")),
		interval:    interval,
		batchSize:   batchSize,
	}
}

var _ portssvc.PaymentReconcilerSvc = (*paymentReconciler)(nil)

// CheckInvoicePayment is the on-demand entry point. Store failures propagate
// to the caller; oracle failures degrade to a pending result.
func (r *paymentReconciler) CheckInvoicePayment(ctx context.Context, invoiceID string) (*portssvc.PaymentCheckResult, error) {
	invoice, err := r.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load invoice for payment check: %w", err)
	}
	metrics.InvoicesCheckedTotal.WithLabelValues("on_demand").Inc()
	return r.checkInvoice(ctx, invoice)
}

// checkInvoice performs the oracle-query-then-markPaid sequence shared by
// both entry points.
func (r *paymentReconciler) checkInvoice(ctx context.Context, invoice *domain.Invoice) (*portssvc.PaymentCheckResult, error) {
	if invoice.IsPaid() {
		result := &portssvc.PaymentCheckResult{
			Status:      domain.InvoiceStatusPaid,
			AlreadyPaid: true,
		}
		if invoice.Settlement != nil {
			tx := invoice.Settlement.TxHash
			result.TxHash = &tx
		}
		return result, nil
	}

	txHash, err := r.oracle.CheckPayment(ctx, invoice.PaymentAddress, invoice.Currency, invoice.Amount)
	if err != nil {
		// Oracle failure degrades to "not yet paid"; it never propagates.
		metrics.OracleErrorsTotal.Inc()
		r.logger.Warn("Oracle check failed",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("error", err.Error()))
		return &portssvc.PaymentCheckResult{Status: domain.InvoiceStatusPending}, nil
	}
	if txHash == nil {
		return &portssvc.PaymentCheckResult{Status: domain.InvoiceStatusPending}, nil
	}

	applied, err := r.invoiceRepo.MarkInvoicePaid(ctx, invoice.InvoiceID, *txHash, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to mark invoice paid: %w", err)
	}
	if !applied {
		// Lost the race against a concurrent check; the invoice is paid
		// either way, so this is a no-op success.
		return &portssvc.PaymentCheckResult{
			Status:      domain.InvoiceStatusPaid,
			AlreadyPaid: true,
		}, nil
	}

	metrics.PaymentsDetectedTotal.Inc()
	r.logger.Info("Payment detected",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("tx_hash", *txHash))
	return &portssvc.PaymentCheckResult{
		Status: domain.InvoiceStatusPaid,
		TxHash: txHash,
	}, nil
}

// Start launches the periodic scan loop. Calling Start more than once is a
// no-op.
func (r *paymentReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	scanCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(scanCtx)
	r.logger.Info("Payment monitoring started", slog.Duration("interval", r.interval))
}

// Stop halts the scan loop. In-flight oracle calls are abandoned via context
// cancellation; Stop does not wait for them to finish.
func (r *paymentReconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return
	}
	r.started = false
	r.cancel()
	<-r.done
	r.logger.Info("Payment monitoring stopped")
}

func (r *paymentReconciler) run(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.safeScan(ctx)
		}
	}
}

// safeScan shields the scheduling loop from anything a scan might throw; a
// failed tick is followed by the next scheduled tick.
func (r *paymentReconciler) safeScan(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Scan tick panicked", slog.Any("panic", rec))
		}
	}()
	r.scanPending(ctx)
}

// scanPending loads one batch of pending invoices and checks each
// independently with bounded fan-out. One invoice's failure never aborts the
// rest of the batch.
func (r *paymentReconciler) scanPending(ctx context.Context) {
	metrics.ReconcileScansTotal.Inc()

	pending, err := r.invoiceRepo.FindInvoices(ctx, domain.InvoiceFilter{Status: domain.InvoiceStatusPending}, r.batchSize)
	if err != nil {
		r.logger.Error("Failed to load pending invoices", slog.String("error", err.Error()))
		return
	}
	if len(pending) == 0 {
		return
	}

	sem := make(chan struct{}, maxConcurrentChecks)
	var wg sync.WaitGroup
	for i := range pending {
		invoice := pending[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Error("Invoice check panicked",
						slog.String("invoice_id", invoice.InvoiceID),
						slog.Any("panic", rec))
				}
			}()

			metrics.InvoicesCheckedTotal.WithLabelValues("scan").Inc()
			if _, err := r.checkInvoice(ctx, &invoice); err != nil {
				r.logger.Error("Invoice check failed",
					slog.String("invoice_id", invoice.InvoiceID),
					slog.String("error", err.Error()))
			}
		}()
	}
	wg.Wait()
}
