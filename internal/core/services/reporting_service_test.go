package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockStaffRepo   *MockStaffRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewReportingService(suite.mockInvoiceRepo, suite.mockStaffRepo, suite.mockUserRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_AdminGetsGlobalTotals() {
	ctx := context.Background()
	viewer := domain.Identity{SubjectID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockInvoiceRepo.On("CountInvoices", ctx, domain.InvoiceFilter{}).Return(int64(10), nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx, domain.InvoiceFilter{Status: domain.InvoiceStatusPending}).Return(int64(4), nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx, domain.InvoiceFilter{Status: domain.InvoiceStatusPaid}).Return(int64(6), nil).Once()
	suite.mockStaffRepo.On("CountActiveStaff", ctx).Return(int64(3), nil).Once()
	suite.mockUserRepo.On("CountUsersByRole", ctx, domain.RoleClient).Return(int64(7), nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx, viewer)

	suite.Require().NoError(err)
	suite.Equal(int64(10), stats.TotalInvoices)
	suite.Equal(int64(4), stats.PendingInvoices)
	suite.Equal(int64(6), stats.PaidInvoices)
	suite.Require().NotNil(stats.TotalStaff)
	suite.Equal(int64(3), *stats.TotalStaff)
	suite.Require().NotNil(stats.TotalClients)
	suite.Equal(int64(7), *stats.TotalClients)
	suite.Empty(stats.Earnings)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_StaffGetsEarnings() {
	ctx := context.Background()
	staffID := uuid.NewString()
	viewer := domain.Identity{SubjectID: staffID, Role: domain.RoleStaff}

	scoped := domain.InvoiceFilter{StaffID: staffID}
	pending := scoped
	pending.Status = domain.InvoiceStatusPending
	paid := scoped
	paid.Status = domain.InvoiceStatusPaid

	suite.mockInvoiceRepo.On("CountInvoices", ctx, scoped).Return(int64(5), nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx, pending).Return(int64(2), nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx, paid).Return(int64(3), nil).Once()
	suite.mockInvoiceRepo.On("SumPaidAmountsByCurrency", ctx, staffID).Return(map[domain.Currency]decimal.Decimal{
		domain.CurrencyUSDT: decimal.NewFromInt(300),
		domain.CurrencyLTC:  decimal.NewFromInt(12),
	}, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx, viewer)

	suite.Require().NoError(err)
	suite.Nil(stats.TotalStaff)
	suite.Nil(stats.TotalClients)
	suite.Require().Len(stats.Earnings, 2)
	// Earnings come back sorted by currency code.
	suite.Equal("LTC", stats.Earnings[0].Currency)
	suite.Equal("USDT", stats.Earnings[1].Currency)
	suite.True(stats.Earnings[1].Total.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_ClientGetsCountsOnly() {
	ctx := context.Background()
	clientID := uuid.NewString()
	viewer := domain.Identity{SubjectID: clientID, Role: domain.RoleClient}

	suite.mockInvoiceRepo.On("CountInvoices", ctx, mock.MatchedBy(func(f domain.InvoiceFilter) bool {
		return f.ClientID == clientID
	})).Return(int64(1), nil).Times(3)

	stats, err := suite.service.GetDashboardStats(ctx, viewer)

	suite.Require().NoError(err)
	suite.Nil(stats.TotalStaff)
	suite.Nil(stats.TotalClients)
	suite.Empty(stats.Earnings)
	suite.mockStaffRepo.AssertNotCalled(suite.T(), "CountActiveStaff", mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CountUsersByRole", mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
