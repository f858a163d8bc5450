package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/core/services"
	"github.com/cpsys/crypto_payment_system/internal/dto"
	"github.com/cpsys/crypto_payment_system/internal/utils"
)

// --- Mock StaffRepository (full facade) ---
type MockStaffRepository struct {
	MockStaffReader
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

// --- Test Suite ---
type StaffServiceTestSuite struct {
	suite.Suite
	mockStaffRepo *MockStaffRepository
	service       portssvc.StaffSvcFacade
}

func (suite *StaffServiceTestSuite) SetupTest() {
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.service = services.NewStaffService(suite.mockStaffRepo)
}

// --- CreateStaff Tests ---

func (suite *StaffServiceTestSuite) TestCreateStaff_Success() {
	ctx := context.Background()
	usdt := "0xstaffusdt"
	req := dto.CreateStaffRequest{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "password123",
		USDTAddress: &usdt,
	}

	suite.mockStaffRepo.On("FindStaffByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStaffRepo.On("SaveStaff", ctx, mock.MatchedBy(func(staff domain.Staff) bool {
		return staff.Email == req.Email &&
			staff.Active &&
			staff.PasswordHash != req.Password &&
			staff.USDTAddress != nil && *staff.USDTAddress == usdt
	})).Return(nil).Once()

	staff, err := suite.service.CreateStaff(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(staff)
	suite.NotEmpty(staff.StaffID)
	suite.True(staff.Active)
	suite.True(utils.CheckPasswordHash(req.Password, staff.PasswordHash))
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestCreateStaff_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateStaffRequest{
		Name:     "Ada",
		Email:    "taken@example.com",
		Password: "password123",
	}
	existing := activeStaff()

	suite.mockStaffRepo.On("FindStaffByEmail", ctx, req.Email).Return(existing, nil).Once()

	staff, err := suite.service.CreateStaff(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(staff)
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "SaveStaff", mock.Anything, mock.Anything)
}

// --- UpdateStaff Tests ---

func (suite *StaffServiceTestSuite) TestUpdateStaff_KeepsHashWhenPasswordOmitted() {
	ctx := context.Background()
	existing := activeStaff()
	originalHash, err := utils.HashPassword("original-password")
	suite.Require().NoError(err)
	existing.PasswordHash = originalHash

	usdc := "0xnewusdc"
	req := dto.UpdateStaffRequest{
		Name:        "Ada Updated",
		Email:       existing.Email,
		USDCAddress: &usdc,
	}

	suite.mockStaffRepo.On("FindStaffByID", ctx, existing.StaffID).Return(existing, nil).Once()
	suite.mockStaffRepo.On("UpdateStaff", ctx, mock.MatchedBy(func(staff domain.Staff) bool {
		return staff.Name == "Ada Updated" &&
			staff.PasswordHash == originalHash &&
			staff.USDCAddress != nil && *staff.USDCAddress == usdc
	})).Return(nil).Once()

	updated, err := suite.service.UpdateStaff(ctx, existing.StaffID, req)

	suite.Require().NoError(err)
	suite.Equal(originalHash, updated.PasswordHash)
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestUpdateStaff_RehashesWhenPasswordSupplied() {
	ctx := context.Background()
	existing := activeStaff()
	originalHash, err := utils.HashPassword("original-password")
	suite.Require().NoError(err)
	existing.PasswordHash = originalHash

	newPassword := "brand-new-password"
	req := dto.UpdateStaffRequest{
		Name:     existing.Name,
		Email:    existing.Email,
		Password: &newPassword,
	}

	suite.mockStaffRepo.On("FindStaffByID", ctx, existing.StaffID).Return(existing, nil).Once()
	suite.mockStaffRepo.On("UpdateStaff", ctx, mock.MatchedBy(func(staff domain.Staff) bool {
		return staff.PasswordHash != originalHash &&
			utils.CheckPasswordHash(newPassword, staff.PasswordHash)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateStaff(ctx, existing.StaffID, req)

	suite.Require().NoError(err)
	suite.True(utils.CheckPasswordHash(newPassword, updated.PasswordHash))
	suite.mockStaffRepo.AssertExpectations(suite.T())
}

func (suite *StaffServiceTestSuite) TestUpdateStaff_NotFound() {
	ctx := context.Background()
	staffID := uuid.NewString()
	req := dto.UpdateStaffRequest{Name: "Ghost", Email: "ghost@example.com"}

	suite.mockStaffRepo.On("FindStaffByID", ctx, staffID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateStaff(ctx, staffID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
}

// --- AuthenticateStaff Tests ---

func (suite *StaffServiceTestSuite) TestAuthenticateStaff_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	existing := activeStaff()
	existing.PasswordHash = hash
	existing.CreatedAt = time.Now().UTC()

	suite.mockStaffRepo.On("FindStaffByEmail", ctx, existing.Email).Return(existing, nil).Once()

	staff, err := suite.service.AuthenticateStaff(ctx, existing.Email, password)

	suite.Require().NoError(err)
	suite.Equal(existing.StaffID, staff.StaffID)
}

func (suite *StaffServiceTestSuite) TestAuthenticateStaff_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	existing := activeStaff()
	existing.PasswordHash = hash

	suite.mockStaffRepo.On("FindStaffByEmail", ctx, existing.Email).Return(existing, nil).Once()

	staff, err := suite.service.AuthenticateStaff(ctx, existing.Email, "wrong-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(staff)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
