package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cpsys/crypto_payment_system/internal/apperrors"
	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/core/services"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockStaffRepo   *MockStaffRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.ReceiptSvcFacade
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewReceiptService(suite.mockInvoiceRepo, suite.mockStaffRepo, suite.mockUserRepo)
}

func paidInvoice() *domain.Invoice {
	invoice := pendingInvoice()
	invoice.Status = domain.InvoiceStatusPaid
	invoice.Settlement = &domain.Settlement{
		TxHash: "simulated_tx_hash",
		PaidAt: time.Now().UTC(),
	}
	return invoice
}

func (suite *ReceiptServiceTestSuite) TestRenderReceipt_ProducesPDF() {
	ctx := context.Background()
	invoice := paidInvoice()
	viewer := domain.Identity{SubjectID: invoice.ClientID, Role: domain.RoleClient}

	staff := activeStaff()
	staff.StaffID = invoice.StaffID
	client := &domain.User{UserID: invoice.ClientID, FullName: "Test Client"}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockStaffRepo.On("FindStaffByID", ctx, invoice.StaffID).Return(staff, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, invoice.ClientID).Return(client, nil).Once()

	pdfBytes, err := suite.service.RenderReceipt(ctx, invoice.InvoiceID, viewer)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(pdfBytes)
	suite.Equal("%PDF", string(pdfBytes[:4]))
}

func (suite *ReceiptServiceTestSuite) TestRenderReceipt_PendingInvoiceIsNotFound() {
	ctx := context.Background()
	invoice := pendingInvoice()
	viewer := domain.Identity{SubjectID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	pdfBytes, err := suite.service.RenderReceipt(ctx, invoice.InvoiceID, viewer)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(pdfBytes)
}

func (suite *ReceiptServiceTestSuite) TestRenderReceipt_ForeignInvoiceLooksAbsentToClient() {
	ctx := context.Background()
	invoice := paidInvoice()
	viewer := domain.Identity{SubjectID: uuid.NewString(), Role: domain.RoleClient}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	pdfBytes, err := suite.service.RenderReceipt(ctx, invoice.InvoiceID, viewer)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(pdfBytes)
}

func (suite *ReceiptServiceTestSuite) TestRenderReceipt_MissingPartiesStillRender() {
	ctx := context.Background()
	invoice := paidInvoice()
	viewer := domain.Identity{SubjectID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockStaffRepo.On("FindStaffByID", ctx, invoice.StaffID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, invoice.ClientID).Return(nil, apperrors.ErrNotFound).Once()

	pdfBytes, err := suite.service.RenderReceipt(ctx, invoice.InvoiceID, viewer)

	suite.Require().NoError(err)
	suite.NotEmpty(pdfBytes)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
