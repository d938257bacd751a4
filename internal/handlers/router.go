package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clueconspiracy/internal/config"
	localMiddleware "clueconspiracy/internal/middleware"
)

// RouterOptions allows customization of router setup for tests
type RouterOptions struct {
	DisableRateLimiting  bool
	DisableRequestLogger bool
	CustomMiddleware     []func(http.Handler) http.Handler
}

// SetupRouter creates the application router with all routes and middleware
func SetupRouter(h *Handler, cfg *config.ServerConfig, opts *RouterOptions) *chi.Mux {
	if opts == nil {
		opts = &RouterOptions{}
	}

	r := chi.NewRouter()

	// Chi's built-in middleware (conditionally applied)
	if !opts.DisableRequestLogger {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// Our custom middleware
	r.Use(localMiddleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))
	r.Use(localMiddleware.SecurityHeaders())

	// Rate limiting (conditionally applied)
	if !opts.DisableRateLimiting {
		rateLimiter := localMiddleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitBurst)
		r.Use(rateLimiter.Middleware())
	}

	for _, mw := range opts.CustomMiddleware {
		r.Use(mw)
	}

	// Room lifecycle
	r.Post("/room/new", h.CreateRoom)
	r.Post("/room/{code}/join", h.JoinRoom)
	r.Post("/room/{code}/leave", h.LeaveRoom)
	r.Post("/room/{code}/start", h.StartGame)
	r.Get("/room/{code}/qr", h.JoinQR)

	// State projections (polling fallback; SSE is the primary channel)
	r.Get("/room/{code}/state", h.RoomState)
	r.Get("/room/{code}/me", h.PlayerState)

	// In-game actions
	r.Post("/room/{code}/briefing/finish", h.FinishBriefing)
	r.Post("/room/{code}/team", h.ProposeTeam)
	r.Post("/room/{code}/vote", h.CastVote)
	r.Post("/room/{code}/plot-check", h.CheckPlot)
	r.Post("/room/{code}/supplies/submit", h.SubmitSupplies)
	r.Post("/room/{code}/instant-disarm", h.InstantDisarm)
	r.Post("/room/{code}/clues/collect", h.CollectClues)
	r.Post("/room/{code}/supplies/distribute", h.DistributeSupplies)
	r.Post("/room/{code}/final/team", h.ProposeFinalTeam)
	r.Post("/room/{code}/final/accuse", h.FinalAccusation)

	// SSE routes with validation middleware
	r.Get("/sse/room/{code}", ValidateSSERequest(h.StreamRoom))

	// Health check endpoints (no auth required)
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
