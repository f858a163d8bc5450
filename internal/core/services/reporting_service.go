package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
	portssvc "github.com/cpsys/crypto_payment_system/internal/core/ports/services"
	"github.com/cpsys/crypto_payment_system/internal/dto"
)

type reportingService struct {
	invoiceRepo portsrepo.InvoiceReader
	staffRepo   portsrepo.StaffReader
	userRepo    portsrepo.UserReader
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(invoiceRepo portsrepo.InvoiceReader, staffRepo portsrepo.StaffReader, userRepo portsrepo.UserReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		invoiceRepo: invoiceRepo,
		staffRepo:   staffRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboardStats returns invoice counts scoped to the viewer. Admins see
// global counts plus staff and client totals, staff see their own invoices
// plus per-currency earnings, clients see only their own invoice counts.
func (s *reportingService) GetDashboardStats(ctx context.Context, viewer domain.Identity) (*dto.DashboardStatsResponse, error) {
	filter := domain.InvoiceFilter{}
	switch viewer.Role {
	case domain.RoleStaff:
		filter.StaffID = viewer.SubjectID
	case domain.RoleClient:
		filter.ClientID = viewer.SubjectID
	}

	total, err := s.invoiceRepo.CountInvoices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	pendingFilter := filter
	pendingFilter.Status = domain.InvoiceStatusPending
	pending, err := s.invoiceRepo.CountInvoices(ctx, pendingFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invoices: %w", err)
	}

	paidFilter := filter
	paidFilter.Status = domain.InvoiceStatusPaid
	paid, err := s.invoiceRepo.CountInvoices(ctx, paidFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to count paid invoices: %w", err)
	}

	stats := &dto.DashboardStatsResponse{
		TotalInvoices:   total,
		PendingInvoices: pending,
		PaidInvoices:    paid,
	}

	switch viewer.Role {
	case domain.RoleAdmin:
		staffCount, err := s.staffRepo.CountActiveStaff(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count staff: %w", err)
		}
		clientCount, err := s.userRepo.CountUsersByRole(ctx, domain.RoleClient)
		if err != nil {
			return nil, fmt.Errorf("failed to count clients: %w", err)
		}
		stats.TotalStaff = &staffCount
		stats.TotalClients = &clientCount
	case domain.RoleStaff:
		sums, err := s.invoiceRepo.SumPaidAmountsByCurrency(ctx, viewer.SubjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate earnings: %w", err)
		}
		earnings := make([]dto.CurrencyEarning, 0, len(sums))
		for currency, totalAmount := range sums {
			earnings = append(earnings, dto.CurrencyEarning{
				Currency: string(currency),
				Total:    totalAmount,
			})
		}
		sort.Slice(earnings, func(i, j int) bool {
			return earnings[i].Currency < earnings[j].Currency
		})
		stats.Earnings = earnings
	}

	return stats, nil
}
