package services

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/cpsys/crypto_payment_system/internal/dto"
)

// StaffReaderSvc defines read operations for staff data
type StaffReaderSvc interface {
	// GetStaffByID retrieves an active staff member by ID.
	GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)

	// ListActiveStaff retrieves all active staff members.
	ListActiveStaff(ctx context.Context) ([]domain.Staff, error)
}

// StaffWriterSvc defines write operations for staff data
type StaffWriterSvc interface {
	// CreateStaff creates a new staff member with hashed credentials.
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*domain.Staff, error)

	// UpdateStaff updates a staff member's details; the password is
	// re-hashed only when one is supplied.
	UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error)
}

// StaffAuthSvc defines operations for staff authentication
type StaffAuthSvc interface {
	// AuthenticateStaff authenticates a staff member with email and password.
	AuthenticateStaff(ctx context.Context, email, password string) (*domain.Staff, error)
}

// StaffSvcFacade combines all staff-related service interfaces
type StaffSvcFacade interface {
	StaffReaderSvc
	StaffWriterSvc
	StaffAuthSvc
}
