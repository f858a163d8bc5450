package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	"github.com/cpsys/crypto_payment_system/internal/models"
	"github.com/cpsys/crypto_payment_system/internal/utils/mapping"
)

type PgxStaffRepository struct {
	db *pgxpool.Pool
}

func newPgxStaffRepository(db *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{db: db}
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepositoryFacade
var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, name, email, password_hash, ltc_address, usdt_address, usdc_address, active, created_at`

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	modelStaff := mapping.ToModelStaff(staff)
	query := `
        INSERT INTO staff (staff_id, name, email, password_hash, ltc_address, usdt_address, usdc_address, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelStaff.StaffID,
		modelStaff.Name,
		modelStaff.Email,
		modelStaff.PasswordHash,
		modelStaff.LTCAddress,
		modelStaff.USDTAddress,
		modelStaff.USDCAddress,
		modelStaff.Active,
		modelStaff.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save staff: %w", err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1 AND active;`
	return r.findOne(ctx, query, staffID)
}

func (r *PgxStaffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = $1 AND active;`
	return r.findOne(ctx, query, email)
}

func (r *PgxStaffRepository) findOne(ctx context.Context, query string, arg any) (*domain.Staff, error) {
	var modelStaff models.Staff
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&modelStaff.StaffID,
		&modelStaff.Name,
		&modelStaff.Email,
		&modelStaff.PasswordHash,
		&modelStaff.LTCAddress,
		&modelStaff.USDTAddress,
		&modelStaff.USDCAddress,
		&modelStaff.Active,
		&modelStaff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	domainStaff := mapping.ToDomainStaff(modelStaff)
	return &domainStaff, nil
}

func (r *PgxStaffRepository) FindActiveStaff(ctx context.Context, limit int) ([]domain.Staff, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + staffColumns + ` FROM staff WHERE active ORDER BY created_at DESC LIMIT $1;`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	modelStaff := []models.Staff{}
	for rows.Next() {
		var m models.Staff
		err := rows.Scan(
			&m.StaffID,
			&m.Name,
			&m.Email,
			&m.PasswordHash,
			&m.LTCAddress,
			&m.USDTAddress,
			&m.USDCAddress,
			&m.Active,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		modelStaff = append(modelStaff, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", rows.Err())
	}

	return mapping.ToDomainStaffSlice(modelStaff), nil
}

func (r *PgxStaffRepository) CountActiveStaff(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff WHERE active;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active staff: %w", err)
	}
	return count, nil
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	modelStaff := mapping.ToModelStaff(staff)
	query := `
        UPDATE staff
        SET name = $1, email = $2, password_hash = $3, ltc_address = $4, usdt_address = $5, usdc_address = $6
        WHERE staff_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelStaff.Name,
		modelStaff.Email,
		modelStaff.PasswordHash,
		modelStaff.LTCAddress,
		modelStaff.USDTAddress,
		modelStaff.USDCAddress,
		modelStaff.StaffID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update staff query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("staff not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
