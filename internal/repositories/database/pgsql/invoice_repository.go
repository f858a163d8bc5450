package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	"github.com/cpsys/crypto_payment_system/internal/models"
	"github.com/cpsys/crypto_payment_system/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, staff_id, client_id, amount, currency, description, status, payment_address, tx_hash, created_at, paid_at`

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
        INSERT INTO invoices (invoice_id, staff_id, client_id, amount, currency, description, status, payment_address, tx_hash, created_at, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.InvoiceID,
		m.StaffID,
		m.ClientID,
		m.Amount,
		m.Currency,
		m.Description,
		m.Status,
		m.PaymentAddress,
		m.TxHash,
		m.CreatedAt,
		m.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	var m models.Invoice
	err := r.db.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.StaffID,
		&m.ClientID,
		&m.Amount,
		&m.Currency,
		&m.Description,
		&m.Status,
		&m.PaymentAddress,
		&m.TxHash,
		&m.CreatedAt,
		&m.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	d, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// filterClause builds the WHERE clause and arguments for an InvoiceFilter.
func filterClause(filter domain.InvoiceFilter) (string, []any) {
	clause := ""
	args := []any{}
	add := func(cond string, val any) {
		args = append(args, val)
		if clause == "" {
			clause = " WHERE "
		} else {
			clause += " AND "
		}
		clause += fmt.Sprintf(cond, len(args))
	}
	if filter.ClientID != "" {
		add("client_id = $%d", filter.ClientID)
	}
	if filter.StaffID != "" {
		add("staff_id = $%d", filter.StaffID)
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	return clause, args
}

func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, filter domain.InvoiceFilter, limit int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 100
	}
	clause, args := filterClause(filter)
	args = append(args, limit)
	query := `SELECT ` + invoiceColumns + ` FROM invoices` + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		var m models.Invoice
		err := rows.Scan(
			&m.InvoiceID,
			&m.StaffID,
			&m.ClientID,
			&m.Amount,
			&m.Currency,
			&m.Description,
			&m.Status,
			&m.PaymentAddress,
			&m.TxHash,
			&m.CreatedAt,
			&m.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices)
}

func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context, filter domain.InvoiceFilter) (int64, error) {
	clause, args := filterClause(filter)
	query := `SELECT COUNT(*) FROM invoices` + clause + `;`
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

func (r *PgxInvoiceRepository) SumPaidAmountsByCurrency(ctx context.Context, staffID string) (map[domain.Currency]decimal.Decimal, error) {
	query := `
        SELECT currency, COALESCE(SUM(amount), 0)
        FROM invoices
        WHERE staff_id = $1 AND status = $2
        GROUP BY currency;
    `
	rows, err := r.db.Query(ctx, query, staffID, string(domain.InvoiceStatusPaid))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate earnings: %w", err)
	}
	defer rows.Close()

	earnings := map[domain.Currency]decimal.Decimal{}
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan earnings row: %w", err)
		}
		earnings[domain.Currency(currency)] = total
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating earnings rows: %w", rows.Err())
	}
	return earnings, nil
}

// MarkInvoicePaid is the single concurrency-control primitive of the payment
// state machine: the status predicate makes the transition a compare-and-set,
// so of two racing checks exactly one observes RowsAffected == 1.
func (r *PgxInvoiceRepository) MarkInvoicePaid(ctx context.Context, invoiceID string, txHash string, paidAt time.Time) (bool, error) {
	query := `
        UPDATE invoices
        SET status = $1, tx_hash = $2, paid_at = $3
        WHERE invoice_id = $4 AND status = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		string(domain.InvoiceStatusPaid),
		txHash,
		paidAt.UTC().Format(time.RFC3339Nano),
		invoiceID,
		string(domain.InvoiceStatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark invoice %s paid: %w", invoiceID, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}
