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
	"github.com/cpsys/crypto_payment_system/internal/utils"
)

// listStaffCap bounds the staff listing defensively.
const listStaffCap = 500

type staffService struct {
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates the staff service.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*domain.Staff, error) {
	existing, err := s.staffRepo.FindStaffByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing staff: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := domain.Staff{
		StaffID:      uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		LTCAddress:   req.LTCAddress,
		USDTAddress:  req.USDTAddress,
		USDCAddress:  req.USDCAddress,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	return &staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff for update: %w", err)
	}

	staff.Name = req.Name
	staff.Email = req.Email
	staff.LTCAddress = req.LTCAddress
	staff.USDTAddress = req.USDTAddress
	staff.USDCAddress = req.USDCAddress

	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		staff.PasswordHash = hash
	}

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff by ID: %w", err)
	}
	return staff, nil
}

func (s *staffService) ListActiveStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.staffRepo.FindActiveStaff(ctx, listStaffCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) AuthenticateStaff(ctx context.Context, email, password string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up staff for authentication: %w", err)
	}
	if !utils.CheckPasswordHash(password, staff.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return staff, nil
}
