package dto

import "github.com/shopspring/decimal"

// CurrencyEarning is one per-currency aggregate of paid invoice amounts.
type CurrencyEarning struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardStatsResponse carries role-dependent dashboard figures. Admin
// responses include staff/client totals; staff responses include earnings;
// client responses carry invoice counts only.
type DashboardStatsResponse struct {
	TotalInvoices   int64             `json:"total_invoices"`
	PendingInvoices int64             `json:"pending_invoices"`
	PaidInvoices    int64             `json:"paid_invoices"`
	TotalStaff      *int64            `json:"total_staff,omitempty"`
	TotalClients    *int64            `json:"total_clients,omitempty"`
	Earnings        []CurrencyEarning `json:"earnings,omitempty"`
}
