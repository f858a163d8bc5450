package services

import (
	"context"

	"github.com/cpsys/crypto_payment_system/internal/core/domain"
	"github.com/cpsys/crypto_payment_system/internal/dto"
)

// ReportingSvcFacade produces role-dependent dashboard figures.
type ReportingSvcFacade interface {
	// GetDashboardStats returns invoice counts scoped to the viewer; admin
	// responses add staff/client totals, staff responses add per-currency
	// earnings.
	GetDashboardStats(ctx context.Context, viewer domain.Identity) (*dto.DashboardStatsResponse, error)
}
