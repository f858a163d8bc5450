package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciler metrics
var (
	ReconcileScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cps_reconcile_scans_total",
		Help: "Total periodic reconciliation scan ticks",
	})

	InvoicesCheckedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cps_invoices_checked_total",
		Help: "Total invoice payment checks, by trigger (scan or on_demand)",
	}, []string{"trigger"})

	PaymentsDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cps_payments_detected_total",
		Help: "Total invoices transitioned to paid",
	})

	OracleErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cps_oracle_errors_total",
		Help: "Total chain oracle consultation failures",
	})
)
