package repositories

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
)

// StaffReader defines read operations for staff data
type StaffReader interface {
	// FindStaffByID retrieves a specific active staff member by ID.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)

	// FindStaffByEmail retrieves a specific staff member by email.
	FindStaffByEmail(ctx context.Context, email string) (*domain.Staff, error)

	// FindActiveStaff retrieves all active staff members, newest first.
	FindActiveStaff(ctx context.Context, limit int) ([]domain.Staff, error)

	// CountActiveStaff counts active staff members.
	CountActiveStaff(ctx context.Context) (int64, error)
}

// StaffWriter defines write operations for staff data
type StaffWriter interface {
	// SaveStaff persists a new staff member.
	SaveStaff(ctx context.Context, staff domain.Staff) error

	// UpdateStaff updates an existing staff member's details.
	UpdateStaff(ctx context.Context, staff domain.Staff) error
}

// StaffRepositoryFacade combines all staff-related repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
