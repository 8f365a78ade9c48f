package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/olympusreit/gateway/internal/metrics"
)

// NewRouter assembles the full HTTP surface: public reads, market quotes,
// unsigned tx builders, the admin-gated executor routes, and /metrics.
func NewRouter(h *Handlers, adminKey string, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(log))
	r.Use(countRequests)
	r.Use(corsOpen)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
	})

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/public", func(r chi.Router) {
		r.Get("/info", h.Info)
		r.Get("/balance/{address}", h.Balance)
		r.Get("/withdrawable-rent/{address}", h.WithdrawableRent)
		r.Get("/check-solvency", h.CheckSolvency)
	})

	r.Route("/market", func(r chi.Router) {
		r.Get("/quote-buy", h.QuoteBuy)
		r.Get("/quote-sell", h.QuoteSell)
	})

	r.Route("/tx", func(r chi.Router) {
		r.Post("/buy-shares", h.BuildBuyShares)
		r.Post("/sell-shares", h.BuildSellShares)
		r.Post("/claim-rent", h.BuildClaimRent)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin(adminKey))
		r.Post("/distribute-rent", h.AdminDistributeRent)
		r.Post("/inject-liquidity", h.AdminInjectLiquidity)
		r.Post("/adjust-share-price", h.AdminAdjustSharePrice)
		r.Post("/emergency-withdraw", h.AdminEmergencyWithdraw)
	})

	return r
}
