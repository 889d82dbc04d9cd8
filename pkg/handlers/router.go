package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/chris/rental-settlement/pkg/middleware"
	"github.com/chris/rental-settlement/pkg/storage"
)

// NewRouter mounts the admin API.
func NewRouter(logger *slog.Logger, reports ReportService, payoutSvc PayoutService, suspensionSvc SuspensionService, store storage.WithdrawalReader) chi.Router {
	commissionHandler := NewCommissionHandler(reports)
	withdrawalsHandler := NewWithdrawalsHandler(store, payoutSvc)
	bookingsHandler := NewBookingsHandler(suspensionSvc)

	r := chi.NewRouter()
	r.Use(middleware.NewStructuredLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Route("/commission", func(r chi.Router) {
		r.Get("/platform-report", commissionHandler.GetPlatformReport)
		r.Get("/realtor/{realtorId}", commissionHandler.GetRealtorReport)
		r.Get("/pending-payouts", commissionHandler.ListPendingPayouts)
		r.Post("/payout/{withdrawalId}", withdrawalsHandler.ProcessWithdrawal)
	})

	r.Route("/withdrawals", func(r chi.Router) {
		r.Get("/", withdrawalsHandler.ListWithdrawals)
		r.Post("/process/{withdrawalId}", withdrawalsHandler.ProcessWithdrawal)
		r.Post("/cancel/{withdrawalId}", withdrawalsHandler.CancelWithdrawal)
		r.Post("/retry-all", withdrawalsHandler.RetryAll)
	})

	r.Put("/bookings/batch-suspend", bookingsHandler.BatchSuspend)

	return r
}
